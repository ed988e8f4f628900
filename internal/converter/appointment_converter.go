package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment with its Patient, Doctor and
// Department relations loaded into the denormalized AppointmentResponse DTO.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		DepartmentID:    appointment.DepartmentID,
		AppointmentDate: FormatDateTime(appointment.AppointmentDate),
		Status:          appointment.Status,
		Notes:           appointment.Notes,
	}

	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.Name
	}
	if appointment.Doctor != nil {
		response.DoctorName = appointment.Doctor.Name
	}
	if appointment.Department != nil {
		response.DepartmentName = &appointment.Department.Name
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
