// cmd/dashboard/main.go
package main

import (
	"log"

	"dashboard-service/internal/api/handlers"
	"dashboard-service/internal/api/responses"
	"dashboard-service/internal/config"
	"dashboard-service/internal/core/sheets"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	responses.InitLogger()

	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	fetcher := sheets.NewHTTPFetcher(cfg.SheetCSVURL)
	sheetsService := sheets.NewService(fetcher, logger)
	dashboardHandler := handlers.NewDashboardHandler(sheetsService)

	router := gin.Default()

	apiV1 := router.Group("/api/v1")
	{
		// Sem Middleware -- Gateway lida com isso
		apiV1.GET("/productivity", dashboardHandler.HandleProductivity)
		apiV1.POST("/productivity/upload", dashboardHandler.HandleProductivityUpload)
		apiV1.GET("/reports", dashboardHandler.HandleReports)
		apiV1.GET("/vehicles/:id/km", dashboardHandler.HandleVehicleKm)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": "dashboard-service"})
	})

	log.Printf("🚀 Dashboard Service (Go) iniciado e escutando na porta %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Falha ao iniciar o servidor do dashboard: ", err)
	}
}
