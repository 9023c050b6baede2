package dashboard

// Metrics is the payload of GET /dashboard/metrics.
type Metrics struct {
	TotalTasks      int `json:"totalTasks"`
	CompletedTasks  int `json:"completedTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	TodoTasks       int `json:"todoTasks"`
	BlockedTasks    int `json:"blockedTasks"`
	OverdueTasks    int `json:"overdueTasks"`

	TotalLeaves    int `json:"totalLeaves"`
	PendingLeaves  int `json:"pendingLeaves"`
	ApprovedLeaves int `json:"approvedLeaves"`
	RejectedLeaves int `json:"rejectedLeaves"`

	WorkloadDistribution []Workload `json:"workloadDistribution"`
}

// Workload counts a user's open (non-completed) tasks.
type Workload struct {
	UserID    int64  `json:"userId" db:"id"`
	Name      string `json:"name" db:"name"`
	TaskCount int    `json:"taskCount" db:"task_count"`
}

// StatusCount is one row of a GROUP BY status query.
type StatusCount struct {
	Status string `db:"status"`
	Total  int    `db:"total"`
}

func (m *Metrics) addTasks(counts []StatusCount) {
	for _, c := range counts {
		m.TotalTasks += c.Total
		switch c.Status {
		case "completed":
			m.CompletedTasks = c.Total
		case "in_progress":
			m.InProgressTasks = c.Total
		case "todo":
			m.TodoTasks = c.Total
		case "blocked":
			m.BlockedTasks = c.Total
		}
	}
}

func (m *Metrics) addLeaves(counts []StatusCount) {
	for _, c := range counts {
		m.TotalLeaves += c.Total
		switch c.Status {
		case "pending":
			m.PendingLeaves = c.Total
		case "approved":
			m.ApprovedLeaves = c.Total
		case "rejected":
			m.RejectedLeaves = c.Total
		}
	}
}
