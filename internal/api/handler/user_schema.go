package handler

// --- Request types ---

type signupRequest struct {
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName"  validate:"required"`
	Email     string   `json:"email"     validate:"required,email"`
	Password  string   `json:"password"  validate:"required,min=8,max=20"`
	Gender    string   `json:"gender"    validate:"required,oneof=Male Female Other"`
	Hobbies   []string `json:"hobbies"`
	Role      string   `json:"role"      validate:"required,oneof=Employee Manager"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes. No response type carries the password hash.

type userResponse struct {
	ID        string   `json:"_id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Gender    string   `json:"gender"`
	Hobbies   []string `json:"hobbies"`
	Role      string   `json:"role"`
}

type signupResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type employeeSummaryResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type departmentRefResponse struct {
	ID             string  `json:"_id"`
	DepartmentName string  `json:"departmentName"`
	CategoryName   string  `json:"categoryName"`
	Location       string  `json:"location"`
	Salary         float64 `json:"salary"`
}

type employeeDetailResponse struct {
	ID         string                 `json:"_id"`
	FirstName  string                 `json:"firstName"`
	LastName   string                 `json:"lastName"`
	Email      string                 `json:"email"`
	Gender     string                 `json:"gender"`
	Hobbies    []string               `json:"hobbies"`
	Role       string                 `json:"role"`
	Department *departmentRefResponse `json:"department,omitempty"`
}
