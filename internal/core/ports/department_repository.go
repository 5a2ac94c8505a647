package ports

import (
	"context"

	"github.com/workforcehub/employee-system/internal/core/domain"
)

// DepartmentListFilter carries all query parameters for listing departments.
// Page and Limit are assumed normalized by the service (1-based, positive).
type DepartmentListFilter struct {
	Category string // optional: case-insensitive substring match on categoryName
	Location string // optional: case-insensitive substring match on location
	Page     int
	Limit    int
	// SortColumn is passed through to the backend. Sorting by the
	// "employees" array field yields backend-defined ordering.
	SortColumn     string
	SortDescending bool
}

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, d *domain.Department) (*domain.Department, error)
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	// Replace overwrites every stored field of the department identified by
	// d.ID in a single document update and returns the stored result.
	// Reports domain.ErrDepartmentNotFound when no such document exists.
	Replace(ctx context.Context, d *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
	// List returns one page of departments matching filter plus the total
	// match count across all pages.
	List(ctx context.Context, filter DepartmentListFilter) ([]*domain.Department, int64, error)
}
