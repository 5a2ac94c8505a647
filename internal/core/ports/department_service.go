package ports

import (
	"context"

	"github.com/workforcehub/employee-system/internal/core/domain"
)

// DepartmentInput carries all data for creating or replacing a department.
// Employees must be non-nil; an empty list is valid.
type DepartmentInput struct {
	DepartmentName string
	CategoryName   string
	Location       string
	Salary         float64
	Employees      []string
}

// DepartmentEmployee is a dereferenced employee embedded in a department
// view. It is the full user minus the password hash.
type DepartmentEmployee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Gender       string
	Hobbies      []string
	Role         string
	DepartmentID string
}

// DepartmentDetail is a department with its employee references dereferenced.
type DepartmentDetail struct {
	ID             string
	DepartmentName string
	CategoryName   string
	Location       string
	Salary         float64
	Employees      []DepartmentEmployee
}

// ListDepartmentsInput carries the list query after transport-level parsing.
// Page and Limit <= 0 mean "use the default".
type ListDepartmentsInput struct {
	Page          int
	Limit         int
	Category      string
	Location      string
	SortColumn    string
	SortDirection string // "desc" sorts descending; anything else ascending
}

// Pagination is the metadata block attached to every list response.
type Pagination struct {
	CurrentPage      int
	TotalPages       int
	TotalDepartments int64
	Limit            int
}

// ListDepartmentsResult is one page of dereferenced departments.
type ListDepartmentsResult struct {
	Departments []DepartmentDetail
	Pagination  Pagination
}

// DepartmentService defines the use-case operations of the department
// registry, including the cross-entity link with the user directory.
type DepartmentService interface {
	// Create persists the department, then bulk-sets the department
	// reference on every listed user. The link step is best-effort: when it
	// fails the department already exists and is not rolled back.
	Create(ctx context.Context, input DepartmentInput) (*domain.Department, error)
	// Update replaces all fields and the employee list. It does not touch
	// the reverse User.DepartmentID links.
	Update(ctx context.Context, id string, input DepartmentInput) (*DepartmentDetail, error)
	// Delete removes the department. Department references on previously
	// linked users are left dangling.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, input ListDepartmentsInput) (*ListDepartmentsResult, error)
}
