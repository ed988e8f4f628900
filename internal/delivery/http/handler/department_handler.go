package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"
)

type DepartmentHandler struct {
	departmentUsecase usecase.DepartmentUsecase
	validator         *validator.CustomValidator
}

func NewDepartmentHandler(departmentUsecase usecase.DepartmentUsecase, validator *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUsecase: departmentUsecase,
		validator:         validator,
	}
}

func (h *DepartmentHandler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentUsecase.FindAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *DepartmentHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid department ID")
		return
	}

	department, err := h.departmentUsecase.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDepartmentNotFound) {
			response.NotFound(w, "Department not found")
			return
		}
		response.InternalServerError(w, "Failed to get department")
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", department)
}

func (h *DepartmentHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.departmentUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDepartmentNameExists) {
			response.Conflict(w, "Department name already exists")
			return
		}
		response.InternalServerError(w, "Failed to create department")
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

func (h *DepartmentHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid department ID")
		return
	}

	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.departmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDepartmentNotFound):
			response.NotFound(w, "Department not found")
		case errors.Is(err, usecase.ErrDepartmentNameExists):
			response.Conflict(w, "Department name already exists")
		default:
			response.InternalServerError(w, "Failed to update department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department updated successfully", department)
}

func (h *DepartmentHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid department ID")
		return
	}

	if err := h.departmentUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrDepartmentNotFound) {
			response.NotFound(w, "Department not found")
			return
		}
		response.InternalServerError(w, "Failed to delete department")
		return
	}

	response.NoContent(w)
}
