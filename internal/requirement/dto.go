package requirement

import (
	"strings"

	errors "github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	"github.com/frahmantamala/productivity-management/internal/core/common/validation"
)

type CreateRequirementDTO struct {
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
}

func (d CreateRequirementDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("requirement_id", d.RequirementID).Required().MaxLength(100)
	v.Field("feature_description", d.FeatureDescription).Required()
	v.Field("priority", d.Priority).Required().OneOf(Priorities...)
	v.Field("requirement_date", d.RequirementDate).Required()
	v.Field("status", d.Status).Required().OneOf(Statuses...)
	v.Field("no_of_sprints", d.NoOfSprints).NonNegative()
	v.Field("cost", d.Cost).NonNegative()
	return v.Validate()
}

func (d CreateRequirementDTO) ToRequirement() *Requirement {
	return &Requirement{
		RequirementID:      strings.TrimSpace(d.RequirementID),
		CustomerID:         d.CustomerID,
		DocumentSource:     d.DocumentSource,
		FeatureDescription: strings.TrimSpace(d.FeatureDescription),
		Priority:           d.Priority,
		AssociatedProduct:  d.AssociatedProduct,
		RequirementDate:    d.RequirementDate,
		Status:             d.Status,
		NoOfSprints:        d.NoOfSprints,
		Cost:               d.Cost,
		QCParameters:       d.QCParameters,
	}
}

// UpdateRequirementDTO keeps absent and null fields unchanged.
type UpdateRequirementDTO struct {
	RequirementID      *string    `json:"requirement_id"`
	CustomerID         *string    `json:"customer_id"`
	DocumentSource     *string    `json:"document_source"`
	FeatureDescription *string    `json:"feature_description"`
	Priority           *string    `json:"priority"`
	AssociatedProduct  *string    `json:"associated_product"`
	RequirementDate    *date.Date `json:"requirement_date"`
	Status             *string    `json:"status"`
	NoOfSprints        *int       `json:"no_of_sprints"`
	Cost               *float64   `json:"cost"`
	QCParameters       *string    `json:"q_cparameters"`
}

func (d UpdateRequirementDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if d.RequirementID != nil {
		v.Field("requirement_id", d.RequirementID).Required().MaxLength(100)
	}
	if d.FeatureDescription != nil {
		v.Field("feature_description", d.FeatureDescription).Required()
	}
	v.Field("priority", d.Priority).OneOf(Priorities...)
	v.Field("status", d.Status).OneOf(Statuses...)
	v.Field("no_of_sprints", d.NoOfSprints).NonNegative()
	v.Field("cost", d.Cost).NonNegative()
	return v.Validate()
}

func (d UpdateRequirementDTO) ToChanges() Changes {
	c := Changes{}
	setString := func(column string, v *string) {
		if v != nil {
			c[column] = strings.TrimSpace(*v)
		}
	}
	setString("requirement_id", d.RequirementID)
	setString("customer_id", d.CustomerID)
	setString("document_source", d.DocumentSource)
	setString("feature_description", d.FeatureDescription)
	setString("priority", d.Priority)
	setString("associated_product", d.AssociatedProduct)
	setString("status", d.Status)
	setString("q_cparameters", d.QCParameters)
	if d.RequirementDate != nil && !d.RequirementDate.IsZero() {
		c["requirement_date"] = *d.RequirementDate
	}
	if d.NoOfSprints != nil {
		c["no_of_sprints"] = *d.NoOfSprints
	}
	if d.Cost != nil {
		c["cost"] = *d.Cost
	}
	return c
}
