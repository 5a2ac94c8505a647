package domain

import "errors"

// Gender is the declared gender of a user.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the declared gender values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Role determines what a user may be linked to: only employees can carry a
// department reference.
type Role string

const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidPassword = errors.New("invalid password")

// PasswordMinLen and PasswordMaxLen bound the plaintext password length,
// checked before hashing. The stored value is always a bcrypt hash.
const (
	PasswordMinLen = 8
	PasswordMaxLen = 20
)

// User is a member of the directory. PasswordHash is never serialized.
type User struct {
	ID           string   `json:"_id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Gender       Gender   `json:"gender"`
	Hobbies      []string `json:"hobbies"`
	Role         Role     `json:"role"`
	// DepartmentID is the id of the department this user belongs to.
	// Empty when unassigned. Set by the department registry, not by signup.
	DepartmentID string `json:"department,omitempty"`
}

// Validate checks required fields, enum membership and the role/department
// exclusivity rule. It returns a ValidationError listing every violated
// field, or nil when the user is well formed.
func (u *User) Validate() error {
	var ve ValidationError
	if u.FirstName == "" {
		ve.Add("firstName", "first name is required")
	}
	if u.LastName == "" {
		ve.Add("lastName", "last name is required")
	}
	if u.Email == "" {
		ve.Add("email", "email is required")
	}
	if !u.Gender.Valid() {
		ve.Add("gender", "gender must be one of Male, Female, Other")
	}
	if !u.Role.Valid() {
		ve.Add("role", "role must be one of Employee, Manager")
	}
	if u.DepartmentID != "" && u.Role != RoleEmployee {
		ve.Add("department", "department can be assigned to employees only")
	}
	return ve.OrNil()
}
