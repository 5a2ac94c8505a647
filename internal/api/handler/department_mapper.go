package handler

import (
	"github.com/workforcehub/employee-system/internal/core/ports"
)

// --- Request → Service input ---

func toDepartmentInput(req departmentRequest) ports.DepartmentInput {
	var salary float64
	if req.Salary != nil {
		salary = *req.Salary
	}
	return ports.DepartmentInput{
		DepartmentName: req.DepartmentName,
		CategoryName:   req.CategoryName,
		Location:       req.Location,
		Salary:         salary,
		Employees:      req.Employees,
	}
}

// --- Service result → HTTP response ---

func toPopulatedResponse(d *ports.DepartmentDetail) populatedDepartmentResponse {
	members := make([]departmentMemberResponse, 0, len(d.Employees))
	for _, e := range d.Employees {
		members = append(members, departmentMemberResponse{
			ID:           e.ID,
			FirstName:    e.FirstName,
			LastName:     e.LastName,
			Email:        e.Email,
			Gender:       e.Gender,
			Hobbies:      e.Hobbies,
			Role:         e.Role,
			DepartmentID: e.DepartmentID,
		})
	}
	return populatedDepartmentResponse{
		ID:             d.ID,
		DepartmentName: d.DepartmentName,
		CategoryName:   d.CategoryName,
		Location:       d.Location,
		Salary:         d.Salary,
		Employees:      members,
	}
}

func toListResponse(r *ports.ListDepartmentsResult) listDepartmentsResponse {
	depts := make([]populatedDepartmentResponse, 0, len(r.Departments))
	for i := range r.Departments {
		depts = append(depts, toPopulatedResponse(&r.Departments[i]))
	}
	return listDepartmentsResponse{
		Departments: depts,
		Pagination: paginationResponse{
			CurrentPage:      r.Pagination.CurrentPage,
			TotalPages:       r.Pagination.TotalPages,
			TotalDepartments: r.Pagination.TotalDepartments,
			Limit:            r.Pagination.Limit,
		},
	}
}
