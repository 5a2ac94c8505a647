package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/workforcehub/employee-system/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for the department registry.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// Create creates a department and links the listed employees to it.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      201   {object}  createDepartmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /department [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	req, err := bindDepartmentRequest(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), toDepartmentInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createDepartmentResponse{
		Message: "Department created successfully!",
		Department: departmentResponse{
			ID:             created.ID,
			DepartmentName: created.DepartmentName,
			CategoryName:   string(created.CategoryName),
			Location:       created.Location,
			Salary:         created.Salary,
			Employees:      created.EmployeeIDs,
		},
	})
}

// List returns one page of departments with employees dereferenced.
// Non-numeric page/limit values silently fall back to the defaults (1/10);
// no parameter combination of valid types yields an error. Sorting by the
// default "employees" array column is backend-defined ordering.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Param        page           query     string  false  "1-based page, default 1"
// @Param        limit          query     string  false  "page size, default 10"
// @Param        category       query     string  false  "case-insensitive substring filter on categoryName"
// @Param        location       query     string  false  "case-insensitive substring filter on location"
// @Param        sortColumn     query     string  false  "column to sort by, default employees"
// @Param        sortDirection  query     string  false  "asc or desc, default asc"
// @Success      200            {object}  listDepartmentsResponse
// @Failure      500            {object}  errorResponse
// @Router       /department [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), ports.ListDepartmentsInput{
		Page:          intParam(c.QueryParam("page")),
		Limit:         intParam(c.QueryParam("limit")),
		Category:      c.QueryParam("category"),
		Location:      c.QueryParam("location"),
		SortColumn:    c.QueryParam("sortColumn"),
		SortDirection: c.QueryParam("sortDirection"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Update replaces all fields of a department and returns the populated
// result. Reverse user links are not re-synced.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id    query     string             true  "Department id"
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      200   {object}  populatedDepartmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /department [patch]
func (h *DepartmentHandler) Update(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "department id is required")
	}

	req, err := bindDepartmentRequest(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), id, toDepartmentInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPopulatedResponse(updated))
}

// Delete removes a department. Department references on previously linked
// users are left in place.
//
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Param        id   query     string  true  "Department id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /department [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "department id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Department deleted successfully"})
}

// bindDepartmentRequest binds and validates the shared create/update body.
func bindDepartmentRequest(c echo.Context) (departmentRequest, error) {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Employees == nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "employees should be an array")
	}
	return req, nil
}

// intParam parses a numeric query parameter. Anything that does not parse to
// a positive integer is reported as 0, which the service maps to its default.
func intParam(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
