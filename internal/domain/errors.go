package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrWarehouseNotFound = errors.New("warehouse not found or inactive")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrTransientStorage  = errors.New("transient storage failure")
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates every violated field so callers can fix all
// problems in one round trip, not just the first one found.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field violation.
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// HasErrors reports whether any field was rejected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ConflictError is the single observable outcome for every duplicate path:
// the (sku, warehouse) pair already stocked, and the SKU race lost at commit
// time. ProductID points callers at the existing product.
type ConflictError struct {
	ProductID   string
	SKU         string
	WarehouseID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("product %s already stocked for sku %s in warehouse %d", e.ProductID, e.SKU, e.WarehouseID)
}

func (e *ConflictError) Unwrap() error { return ErrDuplicate }
