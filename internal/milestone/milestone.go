package milestone

import (
	"time"

	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	"github.com/frahmantamala/productivity-management/internal/core/common/optional"
	milestoneDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/milestone"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDelayed    Status = "delayed"
)

var Statuses = []string{string(StatusNotStarted), string(StatusInProgress), string(StatusCompleted), string(StatusDelayed)}

type Milestone struct {
	ID          int64     `json:"milestone_id"`
	Name        string    `json:"milestone_name"`
	Description *string   `json:"description"`
	TargetDate  date.Date `json:"target_date"`
	Status      Status    `json:"status"`
	CreatedBy   *int64    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type Patch struct {
	Name        optional.Field[string]
	Description optional.Field[string]
	TargetDate  optional.Field[date.Date]
	Status      optional.Field[Status]
}

func (p Patch) Empty() bool {
	return !p.Name.Set && !p.Description.Set && !p.TargetDate.Set && !p.Status.Set
}

func ToDataModel(m *Milestone) *milestoneDatamodel.Milestone {
	return &milestoneDatamodel.Milestone{
		MilestoneID:   m.ID,
		MilestoneName: m.Name,
		Description:   m.Description,
		TargetDate:    m.TargetDate,
		Status:        string(m.Status),
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func FromDataModel(m *milestoneDatamodel.Milestone) *Milestone {
	return &Milestone{
		ID:          m.MilestoneID,
		Name:        m.MilestoneName,
		Description: m.Description,
		TargetDate:  m.TargetDate,
		Status:      Status(m.Status),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}
