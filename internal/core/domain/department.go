package domain

import "errors"

// Category classifies a department.
type Category string

const (
	CategoryHR        Category = "HR"
	CategoryIT        Category = "IT"
	CategorySales     Category = "Sales"
	CategoryProduct   Category = "Product"
	CategoryMarketing Category = "Marketing"
)

// Categories lists every allowed category, in declaration order.
func Categories() []Category {
	return []Category{CategoryHR, CategoryIT, CategorySales, CategoryProduct, CategoryMarketing}
}

// Valid reports whether c is one of the fixed category values.
func (c Category) Valid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

var ErrDepartmentNotFound = errors.New("department not found")

// Department groups users. EmployeeIDs holds the forward side of the
// User<->Department association; the reverse side lives on User.DepartmentID
// and is only written by the create path (see DepartmentService).
type Department struct {
	ID             string   `json:"_id"`
	DepartmentName string   `json:"departmentName"`
	CategoryName   Category `json:"categoryName"`
	Location       string   `json:"location"`
	Salary         float64  `json:"salary"`
	EmployeeIDs    []string `json:"employees"`
}

// Validate checks required fields and category membership, returning a
// ValidationError listing every violated field, or nil.
func (d *Department) Validate() error {
	var ve ValidationError
	if d.DepartmentName == "" {
		ve.Add("departmentName", "department name is required")
	}
	if !d.CategoryName.Valid() {
		ve.Add("categoryName", string(d.CategoryName)+" is not a valid category. Allowed categories are HR, IT, Sales, Product, and Marketing.")
	}
	if d.Location == "" {
		ve.Add("location", "location is required")
	}
	if d.EmployeeIDs == nil {
		ve.Add("employees", "employees should be an array")
	}
	return ve.OrNil()
}
