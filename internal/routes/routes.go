package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/audit"
	"github.com/fswbarber/booking-api/internal/config"
	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/handlers"
	infraRepo "github.com/fswbarber/booking-api/internal/infra/repository"
	"github.com/fswbarber/booking-api/internal/middleware"
	"github.com/fswbarber/booking-api/internal/session"
	"github.com/fswbarber/booking-api/internal/storage"
	ucBooking "github.com/fswbarber/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	store session.Store,
	uploader storage.Uploader,
	cfg *config.Config,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	resolver := guard.NewResolver(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, store, cfg)
	userHandler := handlers.NewUserHandler(db, resolver, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, resolver, auditDispatcher)

	barbershopHandler := handlers.NewBarbershopHandler(db, resolver)
	bookingHandler := handlers.NewBookingHandler(resolver, listBookingsUC, cancelBookingUC)
	dashboardHandler := handlers.NewDashboardHandler(db, resolver)
	logsHandler := handlers.NewLogsHandler(db, resolver)
	uploadHandler := handlers.NewUploadHandler(resolver, uploader)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PÚBLICO
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/barbers", barberHandler.List)

		// ------------------------------
		// 🔐 SESSÃO OBRIGATÓRIA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.SessionMiddleware(store))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/user/role", userHandler.GetRole)

			secured.GET("/users", userHandler.List)
			secured.PATCH("/users/:id", userHandler.Update)

			secured.POST("/barbers", barberHandler.Create)

			// ------------------------------
			// ADMIN / BARBER
			// ------------------------------
			admin := secured.Group("/admin")
			{
				admin.GET("/barbershops", barbershopHandler.List)
				admin.GET("/bookings", bookingHandler.List)
				admin.DELETE("/bookings/:id", bookingHandler.Cancel)
				admin.GET("/dashboard", dashboardHandler.Get)
				admin.GET("/logs", logsHandler.List)
				admin.POST("/uploads", uploadHandler.Upload)
			}
		}
	}
}
