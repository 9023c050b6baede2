package requirement

import (
	"time"

	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	requirementDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/requirement"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

var (
	Priorities = []string{"Low", "Medium", "High", "Critical"}
	Statuses   = []string{"Pending", "In Progress", "Completed", "On Hold", "Cancelled"}
)

type Requirement struct {
	ID                 int64     `json:"id"`
	RequirementID      string    `json:"requirement_id"`
	CustomerID         *string   `json:"customer_id"`
	DocumentSource     *string   `json:"document_source"`
	FeatureDescription string    `json:"feature_description"`
	Priority           string    `json:"priority"`
	AssociatedProduct  *string   `json:"associated_product"`
	RequirementDate    date.Date `json:"requirement_date"`
	Status             string    `json:"status"`
	NoOfSprints        *int      `json:"no_of_sprints"`
	Cost               *float64  `json:"cost"`
	QCParameters       *string   `json:"q_cparameters"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Filter struct {
	Status   string
	Priority string
	Limit    int
	Offset   int
}

// Changes maps column names to new values. Absent columns keep their value.
type Changes map[string]interface{}

func ToDataModel(r *Requirement) *requirementDatamodel.ProductRequirement {
	return &requirementDatamodel.ProductRequirement{
		ID:                 r.ID,
		RequirementID:      r.RequirementID,
		CustomerID:         r.CustomerID,
		DocumentSource:     r.DocumentSource,
		FeatureDescription: r.FeatureDescription,
		Priority:           r.Priority,
		AssociatedProduct:  r.AssociatedProduct,
		RequirementDate:    r.RequirementDate,
		Status:             r.Status,
		NoOfSprints:        r.NoOfSprints,
		Cost:               r.Cost,
		QCParameters:       r.QCParameters,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func FromDataModel(r *requirementDatamodel.ProductRequirement) *Requirement {
	return &Requirement{
		ID:                 r.ID,
		RequirementID:      r.RequirementID,
		CustomerID:         r.CustomerID,
		DocumentSource:     r.DocumentSource,
		FeatureDescription: r.FeatureDescription,
		Priority:           r.Priority,
		AssociatedProduct:  r.AssociatedProduct,
		RequirementDate:    r.RequirementDate,
		Status:             r.Status,
		NoOfSprints:        r.NoOfSprints,
		Cost:               r.Cost,
		QCParameters:       r.QCParameters,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
