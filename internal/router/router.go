package router

import (
	"github.com/charlesmagnus93/epargnePro/internal/config"
	"github.com/charlesmagnus93/epargnePro/internal/handler"
	"github.com/charlesmagnus93/epargnePro/internal/middleware"
	"github.com/charlesmagnus93/epargnePro/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Setup configures the gin engine: public auth routes plus the protected API.
func Setup(cfg *config.Config, db *gorm.DB, logger *logrus.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	st := store.New(db)

	api := r.Group("/api")

	// signup/login need no credential
	authHandler := handler.NewAuthHandler(db, st, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, cfg.JWT.Issuer, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)

	profileHandler := handler.NewProfileHandler(db, st, cfg.Security.BcryptCost)
	protected.POST("/profile", profileHandler.UpdateProfile)
	protected.POST("/profile/password", profileHandler.ChangePassword)
	protected.POST("/profile/delete", profileHandler.DeleteAccount)

	txHandler := handler.NewTransactionHandler(st)
	protected.GET("/transactions", txHandler.List)
	protected.POST("/transactions", txHandler.Create)
	protected.DELETE("/transactions/:id", txHandler.Delete)

	budgetHandler := handler.NewBudgetHandler(st)
	protected.GET("/budget", budgetHandler.Get)
	protected.PUT("/budget", budgetHandler.Put)

	emergencyHandler := handler.NewEmergencyHandler(st)
	protected.GET("/emergency", emergencyHandler.Get)
	protected.PUT("/emergency", emergencyHandler.Put)
	protected.POST("/emergency/transactions", emergencyHandler.AddEntry)

	settingsHandler := handler.NewSettingsHandler(st)
	protected.GET("/settings", settingsHandler.Get)
	protected.PUT("/settings", settingsHandler.Put)

	statsHandler := handler.NewStatsHandler(st)
	protected.GET("/stats/summary", statsHandler.Summary)
	protected.GET("/stats/daily", statsHandler.Daily)
	protected.GET("/stats/categories", statsHandler.Categories)
	protected.GET("/stats/budget", statsHandler.Budget)
	protected.GET("/stats/recommendations", statsHandler.Recommendations)

	exportHandler := handler.NewExportHandler(st)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}
