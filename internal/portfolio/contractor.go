package portfolio

// Contractor is an independent top-level entity, not owned by any project.
type Contractor struct {
	ContractorID   int    `json:"contractorId"`
	Name           string `json:"name"`
	Company        string `json:"company"`
	Trade          string `json:"trade"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Accreditations string `json:"accreditations"`
	Preferred      bool   `json:"preferred"`
	Notes          string `json:"notes"`
}

// Link associates a project with a contractor. Both references are weak:
// validity is not enforced at load time and dangling ids are resolved at
// query time.
type Link struct {
	LinkID       int    `json:"linkId"`
	ProjectID    int    `json:"projectId"`
	ContractorID int    `json:"contractorId"`
	Role         string `json:"role"`
	Notes        string `json:"notes"`
}

// ProjectContractor is the result of joining a link against the contractor
// set. When the linked contractor was never loaded the contractor fields are
// empty and Preferred is false; the link itself still surfaces.
type ProjectContractor struct {
	LinkID         int    `json:"linkId"`
	ProjectID      int    `json:"projectId"`
	Role           string `json:"role"`
	Notes          string `json:"notes"`
	ContractorID   int    `json:"contractorId"`
	Name           string `json:"name"`
	Company        string `json:"company"`
	Trade          string `json:"trade"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Accreditations string `json:"accreditations"`
	Preferred      bool   `json:"preferred"`
}
