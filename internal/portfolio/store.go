package portfolio

import "sync"

// Store holds the loaded entity graph plus the UI selection cursor. Every
// entity sequence is replaced wholesale on load; only status fields and the
// cursor mutate afterwards.
//
// All access goes through the mutex. The original interaction model is a
// single thread of user-event callbacks; the HTTP server breaks that
// assumption, so the store carries its own lock to keep the same
// sequential-consistency guarantee. Project accessors return deep copies:
// only projects and their tasks mutate after load, and a caller must be
// able to read its snapshot after the lock is released while another
// request cycles a status.
type Store struct {
	mu          sync.RWMutex
	projects    []*Project
	contractors []*Contractor
	warnings    []*Warning
	links       []*Link
	selectedID  int
}

// NewStore creates an empty store with no selection.
func NewStore() *Store {
	return &Store{}
}

// SetProjects replaces the project set. If nothing is currently selected and
// the new set is non-empty, the first project becomes selected.
func (s *Store) SetProjects(projects []*Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = projects
	if s.selectedID == 0 && len(projects) > 0 {
		s.selectedID = projects[0].ID
	}
}

// SetContractors replaces the contractor set.
func (s *Store) SetContractors(contractors []*Contractor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contractors = contractors
}

// SetWarnings replaces the H&S warning set.
func (s *Store) SetWarnings(warnings []*Warning) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = warnings
}

// SetLinks replaces the project-contractor link set.
func (s *Store) SetLinks(links []*Link) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = links
}

// Replace applies a normalized snapshot in one step. Equivalent to calling
// the four setters in sequence.
func (s *Store) Replace(snap *Snapshot) {
	s.SetProjects(snap.Projects)
	s.SetContractors(snap.Contractors)
	s.SetWarnings(snap.Warnings)
	s.SetLinks(snap.Links)
}

// SetSelected moves the selection cursor. The id is not validated; a
// dangling cursor resolves to "no selection" at query time. Zero clears the
// selection.
func (s *Store) SetSelected(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
}

// SelectedID returns the raw selection cursor, which may be dangling.
func (s *Store) SelectedID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// Selected returns a copy of the selected project, or (nil, false) when
// nothing is selected or the cursor no longer resolves.
func (s *Store) Selected() (*Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := findProject(s.projects, s.selectedID)
	return p.clone(), p != nil
}

// Project returns a copy of the project with the given id, or nil.
func (s *Store) Project(id int) *Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findProject(s.projects, id).clone()
}

// Projects returns a copy of the project set in insertion order.
func (s *Store) Projects() []*Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.clone()
	}
	return out
}

// Contractors, warnings, and links never mutate after load, so their
// accessors copy only the slice header.

// Contractors returns the contractor set in source order.
func (s *Store) Contractors() []*Contractor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Contractor(nil), s.contractors...)
}

// Warnings returns the H&S warning set in source order.
func (s *Store) Warnings() []*Warning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Warning(nil), s.warnings...)
}

// Links returns the project-contractor link set in source order.
func (s *Store) Links() []*Link {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Link(nil), s.links...)
}

// CycleProjectStatus advances the status of the identified project and
// returns a copy of it, or (nil, false) if the project does not exist.
func (s *Store) CycleProjectStatus(id int) (*Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := findProject(s.projects, id)
	if p == nil {
		return nil, false
	}
	p.Status = p.Status.Next()
	return p.clone(), true
}

// CycleTaskStatus advances the status of a task within a project and returns
// a copy of it, or (nil, false) if the project or task does not exist.
func (s *Store) CycleTaskStatus(projectID int, taskID string) (*Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := findProject(s.projects, projectID)
	if p == nil {
		return nil, false
	}
	t := p.Task(taskID)
	if t == nil {
		return nil, false
	}
	t.Status = t.Status.Next()
	return t.clone(), true
}

func findProject(projects []*Project, id int) *Project {
	if id == 0 {
		return nil
	}
	for _, p := range projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (p *Project) clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	c.PhaseTasks = make([]*Task, len(p.PhaseTasks))
	for i, t := range p.PhaseTasks {
		c.PhaseTasks[i] = t.clone()
	}
	return &c
}

func (t *Task) clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
