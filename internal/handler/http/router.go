package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/wagewise/wagewise-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	workerHandler WorkerHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	anomalyHandler AnomalyHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wagewise"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", workerHandler.List)
			r.Post("/", workerHandler.Create)

			r.Route("/{workerID}", func(r chi.Router) {
				r.Get("/", workerHandler.Get)
				r.Put("/", workerHandler.Update)
				r.Delete("/", workerHandler.Delete)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.MonthView)
					r.Put("/", attendanceHandler.Upsert)
					r.Get("/{date}", attendanceHandler.GetDay)
				})
			})
		})

		r.Delete("/attendance/{recordID}", attendanceHandler.Delete)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/wages", reportHandler.Wages)
			r.Get("/leaves", reportHandler.Leaves)
			r.Get("/expenditure", reportHandler.Expenditure)

			r.Route("/anomalies", func(r chi.Router) {
				r.Get("/", anomalyHandler.GetReport)
				r.Post("/", anomalyHandler.RunDetection)
				r.Get("/all", anomalyHandler.ListReports)
			})
		})
	})
	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
