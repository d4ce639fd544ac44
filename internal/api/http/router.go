package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"bicirent-backend/internal/security"
	"bicirent-backend/internal/service"
	"bicirent-backend/internal/storage"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Regional    *RegionalHandler
	Bicycle     *BicycleHandler
	Rental      *RentalHandler
	Event       *EventHandler
	Maintenance *MaintenanceHandler
	Report      *ReportHandler
	Photo       *PhotoHandler
}

// NewHandlers wires handlers from the service layer.
func NewHandlers(
	authSvc service.AuthService,
	userSvc service.UserService,
	regionalSvc service.RegionalService,
	bicycleSvc service.BicycleService,
	rentalSvc service.RentalService,
	eventSvc service.EventService,
	maintenanceSvc service.MaintenanceService,
	reportSvc service.ReportService,
	photoSvc service.PhotoService,
) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(authSvc),
		User:        NewUserHandler(userSvc),
		Regional:    NewRegionalHandler(regionalSvc),
		Bicycle:     NewBicycleHandler(bicycleSvc),
		Rental:      NewRentalHandler(rentalSvc),
		Event:       NewEventHandler(eventSvc),
		Maintenance: NewMaintenanceHandler(maintenanceSvc),
		Report:      NewReportHandler(reportSvc),
		Photo:       NewPhotoHandler(photoSvc),
	}
}

// NewRouter builds the full route table. mockBackend is optional; when set
// the mock upload/download endpoints are mounted too.
func NewRouter(h *Handlers, tokens security.TokenManager, mockBackend storage.Backend) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, "ok")
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", h.Auth.Register).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods("POST")
	api.HandleFunc("/regionals", h.Regional.List).Methods("GET")
	api.HandleFunc("/regionals/{id:[0-9]+}", h.Regional.Get).Methods("GET")

	// Authenticated routes
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(tokens))

	auth.HandleFunc("/users/me", h.User.GetProfile).Methods("GET")
	auth.HandleFunc("/users/me", h.User.UpdateProfile).Methods("PUT")

	auth.HandleFunc("/bicycles", h.Bicycle.List).Methods("GET")
	auth.HandleFunc("/bicycles/available", h.Bicycle.ListAvailable).Methods("GET")
	auth.HandleFunc("/bicycles/code/{code}", h.Bicycle.GetByCode).Methods("GET")
	auth.HandleFunc("/bicycles/{id:[0-9]+}", h.Bicycle.Get).Methods("GET")

	auth.HandleFunc("/rentals", h.Rental.Rent).Methods("POST")
	auth.HandleFunc("/rentals/my", h.Rental.ListMine).Methods("GET")
	auth.HandleFunc("/rentals/my/active", h.Rental.GetActive).Methods("GET")
	auth.HandleFunc("/rentals/estimate", h.Rental.Estimate).Methods("GET")
	auth.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Get).Methods("GET")
	auth.HandleFunc("/rentals/{id:[0-9]+}/return", h.Rental.Return).Methods("PUT")
	auth.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Cancel).Methods("DELETE")

	auth.HandleFunc("/events", h.Event.List).Methods("GET")
	auth.HandleFunc("/events/upcoming", h.Event.ListUpcoming).Methods("GET")
	auth.HandleFunc("/events/my", h.Event.ListMine).Methods("GET")
	auth.HandleFunc("/events/{id:[0-9]+}", h.Event.Get).Methods("GET")
	auth.HandleFunc("/events/{id:[0-9]+}/register", h.Event.Register).Methods("POST")
	auth.HandleFunc("/events/{id:[0-9]+}/register", h.Event.CancelRegistration).Methods("DELETE")

	auth.HandleFunc("/bicycles/{bicycleId:[0-9]+}/photos", h.Photo.List).Methods("GET")
	auth.HandleFunc("/bicycles/{bicycleId:[0-9]+}/photos/upload-url", h.Photo.GetUploadURL).Methods("POST")
	auth.HandleFunc("/photos/{photoId:[0-9]+}/confirm", h.Photo.ConfirmUpload).Methods("POST")
	auth.HandleFunc("/photos/{photoId:[0-9]+}/download-url", h.Photo.GetDownloadURL).Methods("GET")

	// Admin routes
	admin := auth.NewRoute().Subrouter()
	admin.Use(RequireAdmin)

	admin.HandleFunc("/users", h.User.List).Methods("GET")
	admin.HandleFunc("/regionals", h.Regional.Create).Methods("POST")

	admin.HandleFunc("/bicycles", h.Bicycle.Create).Methods("POST")
	admin.HandleFunc("/bicycles/{id:[0-9]+}", h.Bicycle.Update).Methods("PUT")
	admin.HandleFunc("/bicycles/{id:[0-9]+}", h.Bicycle.Delete).Methods("DELETE")
	admin.HandleFunc("/bicycles/{id:[0-9]+}/status", h.Bicycle.SetStatus).Methods("PATCH")

	admin.HandleFunc("/rentals", h.Rental.List).Methods("GET")

	admin.HandleFunc("/events", h.Event.Create).Methods("POST")
	admin.HandleFunc("/events/{id:[0-9]+}", h.Event.Update).Methods("PUT")
	admin.HandleFunc("/events/{id:[0-9]+}", h.Event.Delete).Methods("DELETE")
	admin.HandleFunc("/events/{id:[0-9]+}/participants", h.Event.ListParticipants).Methods("GET")
	admin.HandleFunc("/events/{eventId:[0-9]+}/attendance/{userId:[0-9]+}", h.Event.MarkAttendance).Methods("POST")

	admin.HandleFunc("/maintenance", h.Maintenance.Create).Methods("POST")
	admin.HandleFunc("/maintenance", h.Maintenance.List).Methods("GET")
	admin.HandleFunc("/maintenance/upcoming", h.Maintenance.ListUpcoming).Methods("GET")
	admin.HandleFunc("/maintenance/overdue", h.Maintenance.ListOverdue).Methods("GET")
	admin.HandleFunc("/maintenance/bicycle/{bicycleId:[0-9]+}", h.Maintenance.ListByBicycle).Methods("GET")
	admin.HandleFunc("/maintenance/{id:[0-9]+}", h.Maintenance.Get).Methods("GET")
	admin.HandleFunc("/maintenance/{id:[0-9]+}", h.Maintenance.Update).Methods("PUT")
	admin.HandleFunc("/maintenance/{id:[0-9]+}", h.Maintenance.Delete).Methods("DELETE")
	admin.HandleFunc("/maintenance/{id:[0-9]+}/complete", h.Maintenance.Complete).Methods("POST")

	admin.HandleFunc("/photos/{photoId:[0-9]+}", h.Photo.Delete).Methods("DELETE")
	admin.HandleFunc("/bicycles/{bicycleId:[0-9]+}/photos/{photoId:[0-9]+}/primary", h.Photo.SetPrimary).Methods("PUT")

	admin.HandleFunc("/reports/dashboard", h.Report.Dashboard).Methods("GET")
	admin.HandleFunc("/reports/revenue", h.Report.MonthlyRevenue).Methods("GET")
	admin.HandleFunc("/reports/strata", h.Report.StratumReport).Methods("GET")
	admin.HandleFunc("/reports/bicycles", h.Report.BicycleStats).Methods("GET")

	if mockBackend != nil {
		RegisterMockStorageRoutes(r, mockBackend)
	}

	return r
}
