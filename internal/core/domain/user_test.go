package domain

import (
	"errors"
	"testing"
)

func TestUser_Validate_Valid(t *testing.T) {
	u := &User{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Gender:    GenderFemale,
		Role:      RoleEmployee,
	}
	if err := u.Validate(); err != nil {
		t.Fatalf("expected valid user, got %v", err)
	}
}

func TestUser_Validate_ManagerWithDepartment(t *testing.T) {
	u := &User{
		FirstName:    "Bob",
		LastName:     "Jones",
		Email:        "bob@example.com",
		Gender:       GenderMale,
		Role:         RoleManager,
		DepartmentID: "64f000000000000000000001",
	}
	err := u.Validate()
	if err == nil {
		t.Fatalf("expected validation error for manager with department")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "department" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}
}

func TestUser_Validate_EmployeeWithDepartment(t *testing.T) {
	u := &User{
		FirstName:    "Carol",
		LastName:     "White",
		Email:        "carol@example.com",
		Gender:       GenderOther,
		Role:         RoleEmployee,
		DepartmentID: "64f000000000000000000001",
	}
	if err := u.Validate(); err != nil {
		t.Fatalf("employee may carry a department reference, got %v", err)
	}
}

func TestUser_Validate_CollectsAllFields(t *testing.T) {
	u := &User{Gender: "Unknown", Role: "Boss"}
	err := u.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// firstName, lastName, email, gender, role all invalid.
	if len(ve.Fields) != 5 {
		t.Fatalf("expected 5 field errors, got %d: %+v", len(ve.Fields), ve.Fields)
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Fatalf("category %q should be valid", c)
		}
	}
	if Category("Finance").Valid() {
		t.Fatalf("Finance should not be a valid category")
	}
	if Category("hr").Valid() {
		t.Fatalf("category values are case sensitive")
	}
}

func TestDepartment_Validate_NilEmployees(t *testing.T) {
	d := &Department{
		DepartmentName: "Eng",
		CategoryName:   CategoryIT,
		Location:       "NYC",
		Salary:         90000,
	}
	err := d.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for nil employees, got %v", err)
	}

	d.EmployeeIDs = []string{}
	if err := d.Validate(); err != nil {
		t.Fatalf("empty employee list must be valid, got %v", err)
	}
}
