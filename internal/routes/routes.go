package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/InstitutRosalie/salon-scheduler/internal/audit"
	"github.com/InstitutRosalie/salon-scheduler/internal/config"
	"github.com/InstitutRosalie/salon-scheduler/internal/handlers"
	infraRepo "github.com/InstitutRosalie/salon-scheduler/internal/infra/repository"
	"github.com/InstitutRosalie/salon-scheduler/internal/lock"
	"github.com/InstitutRosalie/salon-scheduler/internal/middleware"
	"github.com/InstitutRosalie/salon-scheduler/internal/storage"
	ucAppointment "github.com/InstitutRosalie/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	locker lock.Locker,
	uploader *storage.Uploader,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.ScheduleMode,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		cfg.ScheduleMode,
		locker,
		auditDispatcher,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		auditDispatcher,
	)

	listByDateUC := ucAppointment.NewListByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListByMonth(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret, auditDispatcher)

	publicHandler := handlers.NewPublicHandler(db, getAvailabilityUC, createAppointmentUC, cfg.Dev())

	appointmentHandler := handlers.NewAppointmentHandler(
		listByDateUC,
		listByMonthUC,
		updateStatusUC,
		cfg.Dev(),
	)

	prestationHandler := handlers.NewPrestationHandler(db, uploader, auditDispatcher)
	scheduleHandler := handlers.NewScheduleHandler(db, auditDispatcher)
	blockedHandler := handlers.NewBlockedHandler(db, appointmentRepo, auditDispatcher)
	auditLogHandler := handlers.NewAuditLogHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/prestations", publicHandler.ListPrestations)
			publicAPI.GET("/availability", publicHandler.GetAvailableTimes)
			publicAPI.POST("/appointments", publicHandler.SubmitAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.GET("/me/prestations", prestationHandler.List)
			secured.POST("/me/prestations", prestationHandler.Create)
			secured.PATCH("/me/prestations/:id", prestationHandler.Update)
			secured.POST("/me/prestations/:id/photo", prestationHandler.UploadPhoto)

			secured.GET("/me/opening-hours", scheduleHandler.ListOpeningHours)
			secured.PUT("/me/opening-hours", scheduleHandler.ReplaceOpeningHours)

			secured.GET("/me/available-slots", scheduleHandler.ListAvailableSlots)
			secured.PUT("/me/available-slots", scheduleHandler.ReplaceAvailableSlots)

			secured.GET("/me/blocked-dates", blockedHandler.ListBlockedDates)
			secured.POST("/me/blocked-dates", blockedHandler.CreateBlockedDate)
			secured.DELETE("/me/blocked-dates/:id", blockedHandler.DeleteBlockedDate)

			secured.GET("/me/blocked-slots", blockedHandler.ListBlockedSlots)
			secured.POST("/me/blocked-slots", blockedHandler.CreateBlockedSlot)
			secured.DELETE("/me/blocked-slots/:id", blockedHandler.DeleteBlockedSlot)

			secured.GET("/me/audit-logs", auditLogHandler.List)
		}
	}
}
