package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/workforcehub/employee-system/internal/api/metrics"
	"github.com/workforcehub/employee-system/internal/core/domain"
	"github.com/workforcehub/employee-system/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	// defaultSortColumn mirrors the historical list behavior: sorting by
	// the employees array field, with backend-defined ordering.
	defaultSortColumn = "employees"
)

// DepartmentService implements department CRUD, the paginated listing, and
// the cross-entity link with the user directory.
type DepartmentService struct {
	departments ports.DepartmentRepository
	users       ports.UserRepository
	logger      zerolog.Logger
}

func NewDepartmentService(departments ports.DepartmentRepository, users ports.UserRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, users: users, logger: logger}
}

// Create persists a new department, then bulk-sets the department reference
// on every listed user. The two writes are separate backend calls with no
// atomicity across them: when the link step fails the department already
// exists and is not rolled back.
func (s *DepartmentService) Create(ctx context.Context, input ports.DepartmentInput) (*domain.Department, error) {
	dept := &domain.Department{
		DepartmentName: input.DepartmentName,
		CategoryName:   domain.Category(input.CategoryName),
		Location:       input.Location,
		Salary:         input.Salary,
		EmployeeIDs:    input.Employees,
	}
	if err := dept.Validate(); err != nil {
		return nil, err
	}

	created, err := s.departments.Create(ctx, dept)
	if err != nil {
		s.logger.Error().Err(err).Str("department", input.DepartmentName).Msg("failed to create department")
		return nil, err
	}

	if len(created.EmployeeIDs) > 0 {
		linked, err := s.users.AssignDepartment(ctx, created.EmployeeIDs, created.ID)
		if err != nil {
			s.logger.Error().Err(err).Str("department_id", created.ID).Msg("failed to link employees to department")
			return nil, err
		}
		metrics.EmployeesLinkedTotal.Add(float64(linked))
	}

	metrics.DepartmentsCreatedTotal.WithLabelValues(string(created.CategoryName)).Inc()
	s.logger.Info().
		Str("department_id", created.ID).
		Str("category", string(created.CategoryName)).
		Int("employees", len(created.EmployeeIDs)).
		Msg("department created")

	return created, nil
}

// Update replaces all scalar fields and the employee list in one document
// update and returns the result with employees dereferenced. It does not
// touch the reverse User.DepartmentID links: a user added to the employee
// list here does not gain a department reference. Only Create writes the
// reverse side.
func (s *DepartmentService) Update(ctx context.Context, id string, input ports.DepartmentInput) (*ports.DepartmentDetail, error) {
	dept := &domain.Department{
		ID:             id,
		DepartmentName: input.DepartmentName,
		CategoryName:   domain.Category(input.CategoryName),
		Location:       input.Location,
		Salary:         input.Salary,
		EmployeeIDs:    input.Employees,
	}
	if err := dept.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.departments.Replace(ctx, dept)
	if err != nil {
		return nil, err
	}

	employees, err := s.dereference(ctx, updated.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("department_id", updated.ID).Msg("department updated")

	return &ports.DepartmentDetail{
		ID:             updated.ID,
		DepartmentName: updated.DepartmentName,
		CategoryName:   string(updated.CategoryName),
		Location:       updated.Location,
		Salary:         updated.Salary,
		Employees:      employees,
	}, nil
}

// Delete removes the department record. Department references on previously
// linked users are left dangling; reads tolerate them.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		return err
	}
	metrics.DepartmentsDeletedTotal.Inc()
	s.logger.Info().Str("department_id", id).Msg("department deleted")
	return nil
}

// List returns one page of departments with employees dereferenced, plus
// pagination metadata. Out-of-range page/limit values fall back to the
// defaults rather than erroring.
func (s *DepartmentService) List(ctx context.Context, input ports.ListDepartmentsInput) (*ports.ListDepartmentsResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	sortColumn := input.SortColumn
	if sortColumn == "" {
		sortColumn = defaultSortColumn
	}

	filter := ports.DepartmentListFilter{
		Category:       input.Category,
		Location:       input.Location,
		Page:           page,
		Limit:          limit,
		SortColumn:     sortColumn,
		SortDescending: input.SortDirection == "desc",
	}

	depts, total, err := s.departments.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list departments")
		return nil, err
	}

	details := make([]ports.DepartmentDetail, 0, len(depts))
	for _, d := range depts {
		employees, err := s.dereference(ctx, d.EmployeeIDs)
		if err != nil {
			return nil, err
		}
		details = append(details, ports.DepartmentDetail{
			ID:             d.ID,
			DepartmentName: d.DepartmentName,
			CategoryName:   string(d.CategoryName),
			Location:       d.Location,
			Salary:         d.Salary,
			Employees:      employees,
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListDepartmentsResult{
		Departments: details,
		Pagination: ports.Pagination{
			CurrentPage:      page,
			TotalPages:       totalPages,
			TotalDepartments: total,
			Limit:            limit,
		},
	}, nil
}

// dereference resolves employee ids to password-free user views, preserving
// the stored list order. Ids that no longer resolve are dropped.
func (s *DepartmentService) dereference(ctx context.Context, ids []string) ([]ports.DepartmentEmployee, error) {
	if len(ids) == 0 {
		return []ports.DepartmentEmployee{}, nil
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	employees := make([]ports.DepartmentEmployee, 0, len(users))
	for _, u := range users {
		hobbies := u.Hobbies
		if hobbies == nil {
			hobbies = []string{}
		}
		employees = append(employees, ports.DepartmentEmployee{
			ID:           u.ID,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			Email:        u.Email,
			Gender:       string(u.Gender),
			Hobbies:      hobbies,
			Role:         string(u.Role),
			DepartmentID: u.DepartmentID,
		})
	}
	return employees, nil
}
