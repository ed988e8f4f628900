package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// DepartmentToResponse converts a Department entity to DepartmentResponse DTO
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	return &dto.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
	}
}

// DepartmentsToResponses converts a slice of Department entities to slice of DepartmentResponse DTOs
func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *DepartmentToResponse(&departments[i])
	}
	return responses
}
