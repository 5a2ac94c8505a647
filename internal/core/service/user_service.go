package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforcehub/employee-system/internal/api/metrics"
	"github.com/workforcehub/employee-system/internal/core/domain"
	"github.com/workforcehub/employee-system/internal/core/ports"
)

// UserService implements signup, login and the employee queries.
type UserService struct {
	users       ports.UserRepository
	departments ports.DepartmentRepository
	logger      zerolog.Logger
}

func NewUserService(users ports.UserRepository, departments ports.DepartmentRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, departments: departments, logger: logger}
}

// Signup validates the input, hashes the password and persists the user.
// Hashing happens here, at the operation boundary, never as a persistence
// hook: the repository only ever sees the hash.
func (s *UserService) Signup(ctx context.Context, input ports.SignupInput) (*ports.UserProfile, error) {
	user := &domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Gender:    domain.Gender(input.Gender),
		Hobbies:   input.Hobbies,
		Role:      domain.Role(input.Role),
	}
	if user.Hobbies == nil {
		user.Hobbies = []string{}
	}

	ve, _ := user.Validate().(*domain.ValidationError)
	if ve == nil {
		ve = &domain.ValidationError{}
	}
	if n := len(input.Password); n < domain.PasswordMinLen || n > domain.PasswordMaxLen {
		ve.Add("password", fmt.Sprintf("password must be between %d and %d characters", domain.PasswordMinLen, domain.PasswordMaxLen))
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(string(created.Role)).Inc()
	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	return profileOf(created), nil
}

// Login verifies the credentials and returns the password-free profile.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.UserProfile, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
		return nil, domain.ErrInvalidPassword
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return profileOf(user), nil
}

// ListEmployees returns every Employee-role user, projected to the summary
// fields. Managers are excluded.
func (s *UserService) ListEmployees(ctx context.Context) ([]ports.EmployeeSummary, error) {
	users, err := s.users.ListByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.EmployeeSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, ports.EmployeeSummary{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      string(u.Role),
		})
	}
	return summaries, nil
}

// GetEmployeeDetail returns one user with the department reference
// dereferenced. A dangling reference (department deleted after linking) is
// tolerated: the user is returned with a nil department.
func (s *UserService) GetEmployeeDetail(ctx context.Context, id string) (*ports.EmployeeDetail, error) {
	if id == "" {
		ve := &domain.ValidationError{}
		ve.Add("id", "employee id is required")
		return nil, ve
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.EmployeeDetail{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Gender:    string(user.Gender),
		Hobbies:   user.Hobbies,
		Role:      string(user.Role),
	}

	if user.DepartmentID != "" {
		dept, err := s.departments.FindByID(ctx, user.DepartmentID)
		switch {
		case err == nil:
			detail.Department = &ports.DepartmentRef{
				ID:             dept.ID,
				DepartmentName: dept.DepartmentName,
				CategoryName:   string(dept.CategoryName),
				Location:       dept.Location,
				Salary:         dept.Salary,
			}
		case errors.Is(err, domain.ErrDepartmentNotFound):
			// Department deletion leaves references dangling.
			s.logger.Warn().Str("user_id", user.ID).Str("department_id", user.DepartmentID).Msg("dangling department reference")
		default:
			return nil, err
		}
	}

	return detail, nil
}

func profileOf(u *domain.User) *ports.UserProfile {
	hobbies := u.Hobbies
	if hobbies == nil {
		hobbies = []string{}
	}
	return &ports.UserProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Gender:    string(u.Gender),
		Hobbies:   hobbies,
		Role:      string(u.Role),
	}
}
