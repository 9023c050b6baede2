package milestone

import (
	"strings"

	errors "github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	"github.com/frahmantamala/productivity-management/internal/core/common/optional"
	"github.com/frahmantamala/productivity-management/internal/core/common/validation"
)

const maxNameLength = 255

type CreateMilestoneDTO struct {
	MilestoneName string    `json:"milestone_name"`
	Description   *string   `json:"description"`
	TargetDate    date.Date `json:"target_date"`
	Status        string    `json:"status"`
}

func (d CreateMilestoneDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("milestone_name", d.MilestoneName).Required().MaxLength(maxNameLength)
	v.Field("target_date", d.TargetDate).Required()
	v.Field("status", d.Status).OneOf(Statuses...)
	return v.Validate()
}

func (d CreateMilestoneDTO) ToMilestone(createdBy int64) *Milestone {
	m := &Milestone{
		Name:        strings.TrimSpace(d.MilestoneName),
		Description: d.Description,
		TargetDate:  d.TargetDate,
		Status:      Status(d.Status),
		CreatedBy:   &createdBy,
	}
	if m.Status == "" {
		m.Status = StatusNotStarted
	}
	return m
}

type UpdateMilestoneDTO struct {
	MilestoneName optional.Field[string]    `json:"milestone_name"`
	Description   optional.Field[string]    `json:"description"`
	TargetDate    optional.Field[date.Date] `json:"target_date"`
	Status        optional.Field[string]    `json:"status"`
}

// Validate rejects clearing the required columns.
func (d UpdateMilestoneDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if d.MilestoneName.Set {
		v.Field("milestone_name", d.MilestoneName.Value).Required().MaxLength(maxNameLength)
	}
	if d.TargetDate.Set {
		v.Field("target_date", d.TargetDate.Value).Required()
	}
	if d.Status.Set {
		v.Field("status", d.Status.Value).Required().OneOf(Statuses...)
	}
	return v.Validate()
}

func (d UpdateMilestoneDTO) ToPatch() Patch {
	p := Patch{
		Description: d.Description,
		TargetDate:  d.TargetDate,
	}
	if d.MilestoneName.HasValue() {
		p.Name = optional.Of(strings.TrimSpace(d.MilestoneName.Value))
	}
	if d.Status.HasValue() {
		p.Status = optional.Of(Status(d.Status.Value))
	}
	return p
}
