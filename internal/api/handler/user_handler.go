package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workforcehub/employee-system/internal/core/domain"
	"github.com/workforcehub/employee-system/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup registers a new user.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Gender:    req.Gender,
		Hobbies:   req.Hobbies,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signupResponse{
		Message: "Registration Completed Successfully!",
		User:    toUserResponse(profile),
	})
}

// Login checks credentials and returns the password-free profile. Login is
// stateless: no token or session is issued.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "User not found"})
		case errors.Is(err, domain.ErrInvalidPassword):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid password"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(profile))
}

// GetAllUsers lists every Employee-role user, projected.
//
// @Summary      List all employees
// @Tags         users
// @Produce      json
// @Success      200  {array}   employeeSummaryResponse
// @Failure      500  {object}  errorResponse
// @Router       /user/get-all-users [get]
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	employees, err := h.service.ListEmployees(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]employeeSummaryResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, employeeSummaryResponse{
			ID:        e.ID,
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Email:     e.Email,
			Role:      e.Role,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetEmployee returns one user with the department dereferenced.
//
// @Summary      Get employee detail
// @Tags         users
// @Produce      json
// @Param        id   query     string  true  "User id"
// @Success      200  {object}  employeeDetailResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user/employee [get]
func (h *UserHandler) GetEmployee(c echo.Context) error {
	detail, err := h.service.GetEmployeeDetail(c.Request().Context(), c.QueryParam("id"))
	if err != nil {
		return err
	}

	resp := employeeDetailResponse{
		ID:        detail.ID,
		FirstName: detail.FirstName,
		LastName:  detail.LastName,
		Email:     detail.Email,
		Gender:    detail.Gender,
		Hobbies:   detail.Hobbies,
		Role:      detail.Role,
	}
	if detail.Department != nil {
		resp.Department = &departmentRefResponse{
			ID:             detail.Department.ID,
			DepartmentName: detail.Department.DepartmentName,
			CategoryName:   detail.Department.CategoryName,
			Location:       detail.Department.Location,
			Salary:         detail.Department.Salary,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func toUserResponse(p *ports.UserProfile) userResponse {
	return userResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Gender:    p.Gender,
		Hobbies:   p.Hobbies,
		Role:      p.Role,
	}
}
