// Package portfolio provides the in-memory estate portfolio model: workbook
// row normalization, the entity store, the query/aggregation engine, and
// status cycling for projects and tasks.
package portfolio

// ProjectStatus is the lifecycle status of a project.
type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "Planned"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
)

// projectStatusCycle is the order statuses advance through on user action.
var projectStatusCycle = []ProjectStatus{ProjectPlanned, ProjectInProgress, ProjectCompleted}

// Next returns the status following s in the cycle. An unrecognized status
// is treated as Planned before advancing, so it lands on In Progress.
func (s ProjectStatus) Next() ProjectStatus {
	idx := 0
	for i, v := range projectStatusCycle {
		if v == s {
			idx = i
			break
		}
	}
	return projectStatusCycle[(idx+1)%len(projectStatusCycle)]
}

// String returns the string representation of the status.
func (s ProjectStatus) String() string {
	return string(s)
}

// TaskStatus is the completion status of a task.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

var taskStatusCycle = []TaskStatus{TaskNotStarted, TaskInProgress, TaskDone}

// Next returns the status following s in the cycle, with the same
// unrecognized-value handling as ProjectStatus.Next.
func (s TaskStatus) Next() TaskStatus {
	idx := 0
	for i, v := range taskStatusCycle {
		if v == s {
			idx = i
			break
		}
	}
	return taskStatusCycle[(idx+1)%len(taskStatusCycle)]
}

// String returns the string representation of the status.
func (s TaskStatus) String() string {
	return string(s)
}

// IsDone returns true if the task counts as completed.
func (s TaskStatus) IsDone() bool {
	return s == TaskDone
}

// Phase is the project-lifecycle bucket a task is assigned to.
type Phase string

const (
	PhasePre    Phase = "Pre"
	PhaseDuring Phase = "During"
	PhasePost   Phase = "Post"
)

// Task is a single piece of work within a project, owned by that project.
type Task struct {
	ID       string     `json:"id"`
	Phase    Phase      `json:"phase"`
	Title    string     `json:"title"`
	Assignee string     `json:"assignee"`
	Due      string     `json:"due"`
	Status   TaskStatus `json:"status"`
}

// Project is a single estate/construction project and its tasks.
type Project struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	AssetType        string        `json:"assetType"`
	AssetName        string        `json:"assetName"`
	Site             string        `json:"site"`
	BuildingOrArea   string        `json:"buildingOrArea"`
	Status           ProjectStatus `json:"status"`
	StartDate        string        `json:"startDate"`
	EndDate          string        `json:"endDate"`
	Owner            string        `json:"owner"`
	LeadUser         string        `json:"leadUser"`
	CurrentSpend     float64       `json:"currentSpend"`
	ProjectedSpend   float64       `json:"projectedSpend"`
	Budget           float64       `json:"budget"`
	BaselineEstimate float64       `json:"baselineEstimate"`
	RiskRating       string        `json:"riskRating"`
	RiskSummary      string        `json:"riskSummary"`
	PhaseTasks       []*Task       `json:"phaseTasks"`
}

// Variance returns the projected overspend (positive) or saving (negative)
// against budget.
func (p *Project) Variance() float64 {
	return p.ProjectedSpend - p.Budget
}

// Task returns the project's task with the given id, or nil.
// Task ids are not guaranteed unique when titles repeat; the first match wins.
func (p *Project) Task(taskID string) *Task {
	for _, t := range p.PhaseTasks {
		if t.ID == taskID {
			return t
		}
	}
	return nil
}

// PhaseBuckets splits the project's tasks into the three phase columns.
// Tasks with a phase outside {Pre, During, Post} appear in none of them but
// still count toward portfolio statistics.
func (p *Project) PhaseBuckets() (pre, during, post []*Task) {
	for _, t := range p.PhaseTasks {
		switch t.Phase {
		case PhasePre:
			pre = append(pre, t)
		case PhaseDuring:
			during = append(during, t)
		case PhasePost:
			post = append(post, t)
		}
	}
	return pre, during, post
}
