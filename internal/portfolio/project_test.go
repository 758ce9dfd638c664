package portfolio

import "testing"

func TestProjectStatusCycle(t *testing.T) {
	tests := []struct {
		current  ProjectStatus
		expected ProjectStatus
	}{
		{ProjectPlanned, ProjectInProgress},
		{ProjectInProgress, ProjectCompleted},
		{ProjectCompleted, ProjectPlanned},
		{"Bogus", ProjectInProgress},
		{"", ProjectInProgress},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			if got := tt.current.Next(); got != tt.expected {
				t.Errorf("Next(%q) = %q, want %q", tt.current, got, tt.expected)
			}
		})
	}
}

func TestProjectStatusCycleRoundTrip(t *testing.T) {
	for _, start := range []ProjectStatus{ProjectPlanned, ProjectInProgress, ProjectCompleted} {
		got := start.Next().Next().Next()
		if got != start {
			t.Errorf("three cycles from %q landed on %q", start, got)
		}
	}
}

func TestTaskStatusCycle(t *testing.T) {
	tests := []struct {
		current  TaskStatus
		expected TaskStatus
	}{
		{TaskNotStarted, TaskInProgress},
		{TaskInProgress, TaskDone},
		{TaskDone, TaskNotStarted},
		{"Blocked", TaskInProgress},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			if got := tt.current.Next(); got != tt.expected {
				t.Errorf("Next(%q) = %q, want %q", tt.current, got, tt.expected)
			}
		})
	}

	for _, start := range []TaskStatus{TaskNotStarted, TaskInProgress, TaskDone} {
		if got := start.Next().Next().Next(); got != start {
			t.Errorf("three cycles from %q landed on %q", start, got)
		}
	}
}

func TestPhaseBuckets(t *testing.T) {
	p := &Project{
		ID: 1,
		PhaseTasks: []*Task{
			{ID: "1-a", Phase: PhasePre},
			{ID: "1-b", Phase: PhaseDuring},
			{ID: "1-c", Phase: PhasePost},
			{ID: "1-d", Phase: "Handover"}, // unbucketed
			{ID: "1-e", Phase: PhasePre},
		},
	}

	pre, during, post := p.PhaseBuckets()
	if len(pre) != 2 || len(during) != 1 || len(post) != 1 {
		t.Fatalf("bucket sizes = %d/%d/%d, want 2/1/1", len(pre), len(during), len(post))
	}
	if pre[0].ID != "1-a" || pre[1].ID != "1-e" {
		t.Errorf("pre bucket order = %q, %q", pre[0].ID, pre[1].ID)
	}

	// The unbucketed task renders nowhere but still counts toward stats.
	total := len(pre) + len(during) + len(post)
	if total != 4 {
		t.Errorf("bucketed task count = %d, want 4", total)
	}
	if len(p.PhaseTasks) != 5 {
		t.Errorf("owned task count = %d, want 5", len(p.PhaseTasks))
	}
}

func TestProjectTaskLookup(t *testing.T) {
	p := &Project{
		ID: 3,
		PhaseTasks: []*Task{
			{ID: "3-Survey", Title: "Survey"},
			{ID: "3-Fit out", Title: "Fit out"},
		},
	}
	if got := p.Task("3-Fit out"); got == nil || got.Title != "Fit out" {
		t.Errorf("Task lookup failed: %+v", got)
	}
	if got := p.Task("3-missing"); got != nil {
		t.Errorf("Task lookup for unknown id = %+v, want nil", got)
	}
}

func TestProjectVariance(t *testing.T) {
	p := &Project{Budget: 1000, ProjectedSpend: 1200}
	if got := p.Variance(); got != 200 {
		t.Errorf("Variance() = %v, want 200", got)
	}
}
