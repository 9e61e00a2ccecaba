package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wagewise/wagewise-backend-go/internal/config"
	appHTTP "github.com/wagewise/wagewise-backend-go/internal/handler/http"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/database"
	"github.com/wagewise/wagewise-backend-go/internal/repository/postgresql"
	anomalyService "github.com/wagewise/wagewise-backend-go/internal/service/anomaly"
	attendanceService "github.com/wagewise/wagewise-backend-go/internal/service/attendance"
	reportService "github.com/wagewise/wagewise-backend-go/internal/service/report"
	workerService "github.com/wagewise/wagewise-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		fmt.Println("Error preparing database schema:", err)
		return
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	anomalyRepo := postgresql.NewAnomalyRepository(db)

	detector := anomalyService.NewGenkitDetector(ctx, cfg.Anomaly.GeminiAPIKey, cfg.Anomaly.Model)

	workerSvc := workerService.NewWorkerService(db, workerRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workerRepo)
	reportSvc := reportService.NewReportService(workerRepo, attendanceRepo)
	anomalySvc := anomalyService.NewAnomalyService(anomalyRepo, attendanceRepo, workerRepo, detector, cfg.Anomaly.ReportRetention)

	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	anomalyHandler := appHTTP.NewAnomalyHandler(anomalySvc)

	router := appHTTP.NewRouter(
		cfg,
		workerHandler,
		attendanceHandler,
		reportHandler,
		anomalyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
