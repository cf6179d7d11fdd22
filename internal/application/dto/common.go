package dto

import "github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain"

// ErrorResponse HTTP error body. Fields is only set for validation failures.
type ErrorResponse struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// ConflictResponse HTTP 409 body: the existing product and the route callers
// should use for quantity changes instead of re-creating the product. Both
// fields are omitted when the winning product id could not be resolved.
type ConflictResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	ProductID  string `json:"product_id,omitempty"`
	UpdatePath string `json:"update_path,omitempty"`
}
