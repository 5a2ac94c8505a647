package ports

import (
	"context"

	"github.com/workforcehub/employee-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create persists a new user. A unique-index violation on email is
	// reported as domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users whose ids are in ids, preserving the
	// order of ids. Unknown ids are skipped, not errors.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	// AssignDepartment bulk-sets the department reference on every user
	// whose id is in userIDs, returning the number of users modified.
	AssignDepartment(ctx context.Context, userIDs []string, departmentID string) (int64, error)
}
