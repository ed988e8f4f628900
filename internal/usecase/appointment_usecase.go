package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context, filter dto.AppointmentFilter) (*dto.AppointmentListResponse, error)
	FindByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	departmentRepo  repository.DepartmentRepository
	listCache       service.ListCache
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
	listCache service.ListCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		departmentRepo:  departmentRepo,
		listCache:       listCache,
	}
}

func (u *appointmentUsecase) FindAll(ctx context.Context, filter dto.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	if filter.IsEmpty() {
		return cachedList(ctx, u.listCache, u.log, service.ListKeyAppointments, func() (*dto.AppointmentListResponse, error) {
			return u.list(ctx, filter)
		})
	}
	return u.list(ctx, filter)
}

func (u *appointmentUsecase) list(ctx context.Context, filter dto.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	var appointments []entity.Appointment
	var err error
	switch {
	case filter.PatientID != nil:
		appointments, err = u.appointmentRepo.FindByPatientID(db, *filter.PatientID)
	case filter.DoctorID != nil:
		appointments, err = u.appointmentRepo.FindByDoctorID(db, *filter.DoctorID)
	case filter.From != nil || filter.To != nil:
		if filter.From == nil || filter.To == nil || filter.From.After(*filter.To) {
			return nil, ErrInvalidDateRange
		}
		appointments, err = u.appointmentRepo.FindByDateBetween(db, *filter.From, *filter.To)
	default:
		appointments, err = u.appointmentRepo.FindAll(db)
	}
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) FindByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := converter.ParseDateTime(req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findPatient(tx, req.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := u.findDoctor(tx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		Patient:         patient,
		AppointmentDate: appointmentDate,
		Status:          status,
		Notes:           req.Notes,
	}
	appointment.AssignDoctor(doctor)

	// An unknown department id falls back to the doctor's department
	if req.DepartmentID != nil {
		department, err := u.departmentRepo.FindByID(tx, *req.DepartmentID)
		if err != nil {
			u.log.Warnf("Failed to find department: %+v", err)
			return nil, err
		}
		if department != nil {
			appointment.AssignDepartment(department)
		}
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Partial update: only supplied fields change
	if req.PatientID != nil {
		patient, err := u.findPatient(tx, *req.PatientID)
		if err != nil {
			return nil, err
		}
		appointment.PatientID = patient.ID
		appointment.Patient = patient
	}
	if req.DoctorID != nil {
		doctor, err := u.findDoctor(tx, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		appointment.AssignDoctor(doctor)
	}
	if req.DepartmentID != nil {
		department, err := u.departmentRepo.FindByID(tx, *req.DepartmentID)
		if err != nil {
			u.log.Warnf("Failed to find department: %+v", err)
			return nil, err
		}
		if department != nil {
			appointment.AssignDepartment(department)
		}
	}
	if req.AppointmentDate != nil {
		appointmentDate, err := converter.ParseDateTime(*req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		appointment.AppointmentDate = appointmentDate
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.appointmentRepo.ExistsByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if !exists {
		return ErrAppointmentNotFound
	}

	if _, err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed delete appointment: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return nil
}

func (u *appointmentUsecase) findPatient(tx *gorm.DB, id int64) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (u *appointmentUsecase) findDoctor(tx *gorm.DB, id int64) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
