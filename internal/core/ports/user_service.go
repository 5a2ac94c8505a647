package ports

import "context"

// SignupInput carries all data needed to register a new user.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Gender    string
	Hobbies   []string
	Role      string
}

// UserProfile is the password-free view of a user returned by signup and login.
type UserProfile struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Gender    string
	Hobbies   []string
	Role      string
}

// EmployeeSummary is the projected view used by the employee listing.
type EmployeeSummary struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
}

// DepartmentRef is a dereferenced department embedded in an employee detail.
type DepartmentRef struct {
	ID             string
	DepartmentName string
	CategoryName   string
	Location       string
	Salary         float64
}

// EmployeeDetail is the full employee view with the department dereferenced.
// Department is nil when the user has no department or the reference is
// dangling (the department was deleted after linking).
type EmployeeDetail struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Gender     string
	Hobbies    []string
	Role       string
	Department *DepartmentRef
}

// UserService defines the use-case operations of the user directory.
type UserService interface {
	Signup(ctx context.Context, input SignupInput) (*UserProfile, error)
	Login(ctx context.Context, email, password string) (*UserProfile, error)
	// ListEmployees returns every Employee-role user, projected.
	ListEmployees(ctx context.Context) ([]EmployeeSummary, error)
	GetEmployeeDetail(ctx context.Context, id string) (*EmployeeDetail, error)
}
