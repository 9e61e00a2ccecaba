package worker

import (
	"github.com/shopspring/decimal"

	"github.com/wagewise/wagewise-backend-go/internal/pkg/validator"
)

// ========================================
// WORKER DTOs
// ========================================

type CreateWorkerRequest struct {
	Name           string          `json:"name"`
	AssignedSalary decimal.Decimal `json:"assigned_salary"`
	JoinDate       string          `json:"join_date"`
	LeftDate       *string         `json:"left_date,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsPositiveAmount(r.AssignedSalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_salary",
			Message: "assigned_salary must be a positive amount",
		})
	}

	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be a valid YYYY-MM-DD date",
		})
	}

	if r.LeftDate != nil && !validator.IsEmpty(*r.LeftDate) {
		if _, ok := validator.IsValidDate(*r.LeftDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "left_date",
				Message: "left_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NormalizedLeftDate maps a missing or blank left date to nil so downstream
// logic never sees an empty-string placeholder for "still employed".
func (r *CreateWorkerRequest) NormalizedLeftDate() *string {
	return normalizeLeftDate(r.LeftDate)
}

type UpdateWorkerRequest struct {
	ID             string          `json:"-"`
	Name           string          `json:"name"`
	AssignedSalary decimal.Decimal `json:"assigned_salary"`
	JoinDate       string          `json:"join_date"`
	LeftDate       *string         `json:"left_date,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsPositiveAmount(r.AssignedSalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_salary",
			Message: "assigned_salary must be a positive amount",
		})
	}

	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be a valid YYYY-MM-DD date",
		})
	}

	if r.LeftDate != nil && !validator.IsEmpty(*r.LeftDate) {
		if _, ok := validator.IsValidDate(*r.LeftDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "left_date",
				Message: "left_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateWorkerRequest) NormalizedLeftDate() *string {
	return normalizeLeftDate(r.LeftDate)
}

func normalizeLeftDate(leftDate *string) *string {
	if leftDate == nil || validator.IsEmpty(*leftDate) {
		return nil
	}
	return leftDate
}

type WorkerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	AssignedSalary decimal.Decimal `json:"assigned_salary"`
	JoinDate       string          `json:"join_date"`
	LeftDate       *string         `json:"left_date,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
}
