package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/workforcehub/employee-system/internal/core/domain"
	"github.com/workforcehub/employee-system/internal/core/ports"
)

func newDepartmentService(depts *stubDepartmentRepo, users *stubUserRepo) *DepartmentService {
	return NewDepartmentService(depts, users, zerolog.Nop())
}

func validDepartment(employees ...string) ports.DepartmentInput {
	if employees == nil {
		employees = []string{}
	}
	return ports.DepartmentInput{
		DepartmentName: "Eng",
		CategoryName:   "IT",
		Location:       "NYC",
		Salary:         90000,
		Employees:      employees,
	}
}

func seedEmployees(users *stubUserRepo, n int) []string {
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("u%d", i)
		users.add(&domain.User{
			ID:        id,
			FirstName: fmt.Sprintf("Emp%d", i),
			Email:     fmt.Sprintf("emp%d@x.com", i),
			Role:      domain.RoleEmployee,
		})
		ids = append(ids, id)
	}
	return ids
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestDepartmentService_Create_LinksEmployees(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDepartmentRepo()
	ids := seedEmployees(users, 2)
	svc := newDepartmentService(depts, users)

	created, err := svc.Create(context.Background(), validDepartment(ids...))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if len(created.EmployeeIDs) != 2 {
		t.Fatalf("expected 2 employee references, got %d", len(created.EmployeeIDs))
	}

	// Every listed user now points back at the new department.
	linked := 0
	for _, id := range ids {
		u, _ := users.FindByID(context.Background(), id)
		if u.DepartmentID == created.ID {
			linked++
		}
	}
	if linked != len(ids) {
		t.Fatalf("expected %d users linked, got %d", len(ids), linked)
	}
}

func TestDepartmentService_Create_EmptyEmployeeList(t *testing.T) {
	svc := newDepartmentService(newStubDepartmentRepo(), newStubUserRepo())

	created, err := svc.Create(context.Background(), validDepartment())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(created.EmployeeIDs) != 0 {
		t.Fatalf("expected no employee references, got %v", created.EmployeeIDs)
	}
}

func TestDepartmentService_Create_Validation(t *testing.T) {
	svc := newDepartmentService(newStubDepartmentRepo(), newStubUserRepo())

	_, err := svc.Create(context.Background(), ports.DepartmentInput{CategoryName: "Finance"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// departmentName, categoryName, location, employees.
	if len(ve.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %+v", len(ve.Fields), ve.Fields)
	}
}

func TestDepartmentService_Create_LinkFailureLeavesDepartment(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDepartmentRepo()
	ids := seedEmployees(users, 1)
	users.assignErr = errors.New("backend down")
	svc := newDepartmentService(depts, users)

	_, err := svc.Create(context.Background(), validDepartment(ids...))
	if err == nil {
		t.Fatalf("expected link failure to surface")
	}

	// The department insert is not rolled back: partial-failure window.
	if len(depts.departments) != 1 {
		t.Fatalf("expected department to survive the failed link step")
	}
	u, _ := users.FindByID(context.Background(), ids[0])
	if u.DepartmentID != "" {
		t.Fatalf("user must not be linked when the bulk update failed")
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestDepartmentService_Update_NotFound(t *testing.T) {
	svc := newDepartmentService(newStubDepartmentRepo(), newStubUserRepo())

	_, err := svc.Update(context.Background(), "missing", validDepartment())
	if !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDepartmentService_Update_ReplacesAndPopulates(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDepartmentRepo()
	ids := seedEmployees(users, 2)
	svc := newDepartmentService(depts, users)

	created, err := svc.Create(context.Background(), validDepartment(ids[0]))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	input := validDepartment(ids...)
	input.DepartmentName = "Platform"
	input.Salary = 120000
	updated, err := svc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.DepartmentName != "Platform" || updated.Salary != 120000 {
		t.Fatalf("scalar fields not replaced: %+v", updated)
	}
	if len(updated.Employees) != 2 {
		t.Fatalf("expected 2 dereferenced employees, got %d", len(updated.Employees))
	}
	if updated.Employees[0].FirstName != "Emp1" || updated.Employees[1].FirstName != "Emp2" {
		t.Fatalf("employee order not preserved: %+v", updated.Employees)
	}
}

func TestDepartmentService_Update_DoesNotRelinkUsers(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDepartmentRepo()
	ids := seedEmployees(users, 2)
	svc := newDepartmentService(depts, users)

	// u1 is linked at create time; u2 is added later via update.
	created, err := svc.Create(context.Background(), validDepartment(ids[0]))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Update(context.Background(), created.ID, validDepartment(ids...)); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	// Update never writes the reverse link: u2 stays unassigned.
	u2, _ := users.FindByID(context.Background(), ids[1])
	if u2.DepartmentID != "" {
		t.Fatalf("update must not set department on added users, got %q", u2.DepartmentID)
	}
	u1, _ := users.FindByID(context.Background(), ids[0])
	if u1.DepartmentID != created.ID {
		t.Fatalf("existing link must be untouched, got %q", u1.DepartmentID)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDepartmentService_Delete_NotFound(t *testing.T) {
	svc := newDepartmentService(newStubDepartmentRepo(), newStubUserRepo())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDepartmentService_Delete_LeavesUserLinks(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDepartmentRepo()
	ids := seedEmployees(users, 1)
	svc := newDepartmentService(depts, users)

	created, err := svc.Create(context.Background(), validDepartment(ids...))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	// Deletion does not cascade: the user's reference now dangles.
	u, _ := users.FindByID(context.Background(), ids[0])
	if u.DepartmentID != created.ID {
		t.Fatalf("expected dangling reference to remain, got %q", u.DepartmentID)
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func seedDepartments(t *testing.T, svc *DepartmentService, n int) {
	t.Helper()
	categories := domain.Categories()
	for i := 0; i < n; i++ {
		input := ports.DepartmentInput{
			DepartmentName: fmt.Sprintf("Dept%02d", i),
			CategoryName:   string(categories[i%len(categories)]),
			Location:       fmt.Sprintf("City%02d", i),
			Salary:         float64(50000 + i*1000),
			Employees:      []string{},
		}
		if _, err := svc.Create(context.Background(), input); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}
}

func TestDepartmentService_List_Defaults(t *testing.T) {
	svc := newDepartmentService(newStubDepartmentRepo(), newStubUserRepo())
	seedDepartments(t, svc, 15)

	// Zero values mean "use the defaults": page 1, limit 10.
	result, err := svc.List(context.Background(), ports.ListDepartmentsInput{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Departments) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Departments))
	}
	p := result.Pagination
	if p.CurrentPage != 1 || p.Limit != 10 || p.TotalDepartments != 15 || p.TotalPages != 2 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
}

func TestDepartmentService_List_PaginationArithmetic(t *testing.T) {
	svc := newDepartmentService(newStubDepartmentRepo(), newStubUserRepo())
	seedDepartments(t, svc, 25)

	result, err := svc.List(context.Background(), ports.ListDepartmentsInput{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Departments) != 5 {
		t.Fatalf("last page should hold the remainder, got %d items", len(result.Departments))
	}
	p := result.Pagination
	if p.CurrentPage != 3 || p.TotalPages != 3 || p.TotalDepartments != 25 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
}

func TestDepartmentService_List_PageBeyondEnd(t *testing.T) {
	svc := newDepartmentService(newStubDepartmentRepo(), newStubUserRepo())
	seedDepartments(t, svc, 3)

	result, err := svc.List(context.Background(), ports.ListDepartmentsInput{Page: 9, Limit: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Departments) != 0 {
		t.Fatalf("expected empty page, got %d items", len(result.Departments))
	}
	if result.Pagination.TotalDepartments != 3 {
		t.Fatalf("unexpected total: %+v", result.Pagination)
	}
}

func TestDepartmentService_List_CaseInsensitiveFilters(t *testing.T) {
	svc := newDepartmentService(newStubDepartmentRepo(), newStubUserRepo())

	input := validDepartment()
	input.CategoryName = "HR"
	input.Location = "New York"
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	result, err := svc.List(context.Background(), ports.ListDepartmentsInput{Category: "hr"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Departments) != 1 {
		t.Fatalf("category filter should match case-insensitively, got %d items", len(result.Departments))
	}

	result, err = svc.List(context.Background(), ports.ListDepartmentsInput{Location: "york"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Departments) != 1 {
		t.Fatalf("location filter should substring-match, got %d items", len(result.Departments))
	}

	result, err = svc.List(context.Background(), ports.ListDepartmentsInput{Location: "boston"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Departments) != 0 {
		t.Fatalf("non-matching filter should exclude, got %d items", len(result.Departments))
	}
}

func TestDepartmentService_List_SortBothDirections(t *testing.T) {
	svc := newDepartmentService(newStubDepartmentRepo(), newStubUserRepo())
	seedDepartments(t, svc, 5)

	asc, err := svc.List(context.Background(), ports.ListDepartmentsInput{SortColumn: "salary"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for i := 1; i < len(asc.Departments); i++ {
		if asc.Departments[i].Salary < asc.Departments[i-1].Salary {
			t.Fatalf("ascending sort violated at %d", i)
		}
	}

	desc, err := svc.List(context.Background(), ports.ListDepartmentsInput{SortColumn: "salary", SortDirection: "desc"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for i := 1; i < len(desc.Departments); i++ {
		if desc.Departments[i].Salary > desc.Departments[i-1].Salary {
			t.Fatalf("descending sort violated at %d", i)
		}
	}

	// Any direction other than "desc" sorts ascending.
	weird, err := svc.List(context.Background(), ports.ListDepartmentsInput{SortColumn: "salary", SortDirection: "sideways"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if weird.Departments[0].Salary != asc.Departments[0].Salary {
		t.Fatalf("unknown sort direction should behave as ascending")
	}
}

func TestDepartmentService_List_PopulatesEmployees(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDepartmentRepo()
	ids := seedEmployees(users, 2)
	svc := newDepartmentService(depts, users)

	if _, err := svc.Create(context.Background(), validDepartment(ids...)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	result, err := svc.List(context.Background(), ports.ListDepartmentsInput{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Departments) != 1 {
		t.Fatalf("expected 1 department, got %d", len(result.Departments))
	}
	members := result.Departments[0].Employees
	if len(members) != 2 {
		t.Fatalf("expected 2 dereferenced employees, got %d", len(members))
	}
	if members[0].Email != "emp1@x.com" {
		t.Fatalf("unexpected employee projection: %+v", members[0])
	}
}
