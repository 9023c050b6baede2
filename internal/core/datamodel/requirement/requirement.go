package requirement

import (
	"time"

	"github.com/frahmantamala/productivity-management/internal/core/common/date"
)

type ProductRequirement struct {
	ID                 int64     `gorm:"primaryKey"`
	RequirementID      string    `gorm:"column:requirement_id;uniqueIndex;not null"`
	CustomerID         *string   `gorm:"column:customer_id"`
	DocumentSource     *string   `gorm:"column:document_source"`
	FeatureDescription string    `gorm:"column:feature_description;not null"`
	Priority           string    `gorm:"column:priority;not null"`
	AssociatedProduct  *string   `gorm:"column:associated_product"`
	RequirementDate    date.Date `gorm:"column:requirement_date;not null"`
	Status             string    `gorm:"column:status;not null"`
	NoOfSprints        *int      `gorm:"column:no_of_sprints"`
	Cost               *float64  `gorm:"column:cost;type:numeric(12,2)"`
	QCParameters       *string   `gorm:"column:q_cparameters"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ProductRequirement) TableName() string {
	return "product_requirements"
}
