package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	departmentHandler  *handler.DepartmentHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	middlewares        []mux.MiddlewareFunc
}

// NewRouter wires the handlers. Middlewares run in the order given, the
// first one outermost.
func NewRouter(
	departmentHandler *handler.DepartmentHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	middlewares ...mux.MiddlewareFunc,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		departmentHandler:  departmentHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		middlewares:        middlewares,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Departments
	api.HandleFunc("/departments", r.departmentHandler.GetAllDepartments).Methods(http.MethodGet)
	api.HandleFunc("/departments", r.departmentHandler.CreateDepartment).Methods(http.MethodPost)
	api.HandleFunc("/departments/{id}", r.departmentHandler.GetDepartment).Methods(http.MethodGet)
	api.HandleFunc("/departments/{id}", r.departmentHandler.UpdateDepartment).Methods(http.MethodPut)
	api.HandleFunc("/departments/{id}", r.departmentHandler.DeleteDepartment).Methods(http.MethodDelete)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Preflight requests match here so the middleware chain sees them
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.router.Use(r.middlewares...)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
