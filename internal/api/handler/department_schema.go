package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// departmentRequest is the shared body shape of create and update. Salary is
// a pointer so that an explicit 0 passes "required" while an absent field
// fails it. Employees presence is checked in the handler: the field must be
// an array, possibly empty.
type departmentRequest struct {
	DepartmentName string   `json:"departmentName" validate:"required"`
	CategoryName   string   `json:"categoryName"   validate:"required,oneof=HR IT Sales Product Marketing"`
	Location       string   `json:"location"       validate:"required"`
	Salary         *float64 `json:"salary"         validate:"required"`
	Employees      []string `json:"employees"`
}

// --- Response types ---

// departmentResponse is the unpopulated view returned by create: employee
// references stay ids.
type departmentResponse struct {
	ID             string   `json:"_id"`
	DepartmentName string   `json:"departmentName"`
	CategoryName   string   `json:"categoryName"`
	Location       string   `json:"location"`
	Salary         float64  `json:"salary"`
	Employees      []string `json:"employees"`
}

type createDepartmentResponse struct {
	Message    string             `json:"message"`
	Department departmentResponse `json:"department"`
}

// populatedDepartmentResponse is the dereferenced view returned by update and
// list: employee references are expanded to password-free user objects.
type populatedDepartmentResponse struct {
	ID             string                     `json:"_id"`
	DepartmentName string                     `json:"departmentName"`
	CategoryName   string                     `json:"categoryName"`
	Location       string                     `json:"location"`
	Salary         float64                    `json:"salary"`
	Employees      []departmentMemberResponse `json:"employees"`
}

type departmentMemberResponse struct {
	ID           string   `json:"_id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	Gender       string   `json:"gender"`
	Hobbies      []string `json:"hobbies"`
	Role         string   `json:"role"`
	DepartmentID string   `json:"department,omitempty"`
}

type paginationResponse struct {
	CurrentPage      int   `json:"currentPage"`
	TotalPages       int   `json:"totalPages"`
	TotalDepartments int64 `json:"totalDepartments"`
	Limit            int   `json:"limit"`
}

type listDepartmentsResponse struct {
	Departments []populatedDepartmentResponse `json:"departments"`
	Pagination  paginationResponse            `json:"pagination"`
}

type messageResponse struct {
	Message string `json:"message"`
}
