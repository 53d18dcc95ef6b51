package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightsprout/childcare-api/internal/auth"
	"github.com/brightsprout/childcare-api/internal/cascade"
	"github.com/brightsprout/childcare-api/internal/handlers"
	infraRepo "github.com/brightsprout/childcare-api/internal/infra/repository"
	"github.com/brightsprout/childcare-api/internal/middleware"
	ucIdentity "github.com/brightsprout/childcare-api/internal/usecase/identity"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	identityRepo := infraRepo.NewIdentityGormRepository(db)
	cascades := cascade.NewRunner(db)

	// ======================================================
	// 🧠 USE CASES — IDENTITY
	// ======================================================
	registerUC := ucIdentity.NewRegister(identityRepo)
	authenticateUC := ucIdentity.NewAuthenticate(identityRepo)
	updateUserUC := ucIdentity.NewUpdate(identityRepo)
	changePasswordUC := ucIdentity.NewChangeOwnPassword(identityRepo)
	adminResetUC := ucIdentity.NewAdminResetPassword(identityRepo)
	deleteUserUC := ucIdentity.NewDelete(identityRepo)
	listUsersUC := ucIdentity.NewListUsers(identityRepo)
	listAvailableUC := ucIdentity.NewListAvailableStaffUsers(identityRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		db,
		tokens,
		registerUC,
		authenticateUC,
		updateUserUC,
		changePasswordUC,
		adminResetUC,
		deleteUserUC,
		listUsersUC,
		listAvailableUC,
	)

	childrenHandler := handlers.NewChildrenHandler(db, cascades)
	staffHandler := handlers.NewStaffHandler(db, cascades)
	attendanceHandler := handlers.NewAttendanceHandler(db)
	billingHandler := handlers.NewBillingHandler(db)
	healthRecordsHandler := handlers.NewHealthRecordsHandler(db)
	activitiesHandler := handlers.NewActivitiesHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH (public)
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 PRIVATE API (JWT)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(db, tokens))
		{
			// ------------------------------
			// AUTH / USERS
			// ------------------------------
			secured.GET("/auth/me", authHandler.GetMe)
			secured.GET("/auth/", authHandler.List)
			secured.GET("/auth/available-staff-users", authHandler.AvailableStaffUsers)
			secured.PUT("/auth/update/:id", authHandler.Update)
			secured.PUT("/auth/change-password", authHandler.ChangePassword)
			secured.PUT("/auth/admin/change-password/:id", authHandler.AdminChangePassword)
			secured.DELETE("/auth/:id", authHandler.Delete)

			// ------------------------------
			// CHILDREN
			// ------------------------------
			secured.POST("/children", childrenHandler.Create)
			secured.GET("/children", childrenHandler.List)
			secured.GET("/children/:id", childrenHandler.Get)
			secured.PUT("/children/:id", childrenHandler.Update)
			secured.DELETE("/children/:id", childrenHandler.Delete)

			// ------------------------------
			// STAFF
			// ------------------------------
			secured.POST("/staff", staffHandler.Create)
			secured.GET("/staff", staffHandler.List)
			secured.GET("/staff/:id", staffHandler.Get)
			secured.PUT("/staff/:id", staffHandler.Update)
			secured.DELETE("/staff/:id", staffHandler.Delete)

			// ------------------------------
			// ATTENDANCE
			// ------------------------------
			secured.POST("/attendance", attendanceHandler.Create)
			secured.GET("/attendance", attendanceHandler.List)
			secured.GET("/attendance/:id", attendanceHandler.Get)
			secured.PUT("/attendance/:id", attendanceHandler.Update)
			secured.DELETE("/attendance/:id", attendanceHandler.Delete)

			// ------------------------------
			// BILLING
			// ------------------------------
			secured.POST("/billing", billingHandler.Create)
			secured.GET("/billing", billingHandler.List)
			secured.GET("/billing/:id", billingHandler.Get)
			secured.PUT("/billing/:id", billingHandler.Update)
			secured.DELETE("/billing/:id", billingHandler.Delete)

			// ------------------------------
			// HEALTH RECORDS
			// ------------------------------
			secured.POST("/health-records", healthRecordsHandler.Create)
			secured.GET("/health-records", healthRecordsHandler.List)
			secured.GET("/health-records/:id", healthRecordsHandler.Get)
			secured.PUT("/health-records/:id", healthRecordsHandler.Update)
			secured.DELETE("/health-records/:id", healthRecordsHandler.Delete)

			// ------------------------------
			// ACTIVITIES
			// ------------------------------
			secured.POST("/activities", activitiesHandler.Create)
			secured.GET("/activities", activitiesHandler.List)
			secured.GET("/activities/:id", activitiesHandler.Get)
			secured.PUT("/activities/:id", activitiesHandler.Update)
			secured.DELETE("/activities/:id", activitiesHandler.Delete)
		}
	}
}
