package milestone

import (
	"time"

	"github.com/frahmantamala/productivity-management/internal/core/common/date"
)

type Milestone struct {
	MilestoneID   int64     `db:"milestone_id"`
	MilestoneName string    `db:"milestone_name"`
	Description   *string   `db:"description"`
	TargetDate    date.Date `db:"target_date"`
	Status        string    `db:"status"`
	CreatedBy     *int64    `db:"created_by"`
	CreatedAt     time.Time `db:"created_at"`
}
