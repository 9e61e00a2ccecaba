// Command import loads a browser export from the previous frontend-only
// version of the system into the database. The export is the three JSON
// arrays the old app kept in local storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/wagewise/wagewise-backend-go/internal/config"
	"github.com/wagewise/wagewise-backend-go/internal/legacyimport"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/database"
	"github.com/wagewise/wagewise-backend-go/internal/repository/postgresql"
)

func main() {
	workersPath := flag.String("workers", "", "path to the workers JSON export")
	recordsPath := flag.String("attendance", "", "path to the attendance records JSON export")
	reportsPath := flag.String("anomalies", "", "path to the anomaly reports JSON export")
	flag.Parse()

	if *workersPath == "" {
		fmt.Fprintln(os.Stderr, "-workers is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		fmt.Fprintln(os.Stderr, "Error preparing database schema:", err)
		os.Exit(1)
	}

	workersJSON, err := os.ReadFile(*workersPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading workers export:", err)
		os.Exit(1)
	}
	recordsJSON, err := readOptional(*recordsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading attendance export:", err)
		os.Exit(1)
	}
	reportsJSON, err := readOptional(*reportsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading anomaly reports export:", err)
		os.Exit(1)
	}

	importer := legacyimport.NewImporter(
		postgresql.NewWorkerRepository(db),
		postgresql.NewAttendanceRepository(db),
		postgresql.NewAnomalyRepository(db),
		cfg.Anomaly.ReportRetention,
	)

	summary, err := importer.Run(ctx, workersJSON, recordsJSON, reportsJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Import failed:", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d workers, %d attendance records, %d anomaly reports\n",
		summary.WorkersImported, summary.RecordsImported, summary.ReportsImported)
	if summary.RecordsCollapsed > 0 {
		fmt.Printf("Collapsed %d duplicate attendance entries\n", summary.RecordsCollapsed)
	}
	if summary.RecordsOrphaned > 0 {
		fmt.Printf("Skipped %d attendance entries with unknown workers\n", summary.RecordsOrphaned)
	}
	if summary.StatusesMigrated > 0 {
		fmt.Printf("Migrated %d legacy statuses to present\n", summary.StatusesMigrated)
	}
	if summary.JoinDatesDefaulted > 0 {
		fmt.Printf("Defaulted %d missing join dates to today\n", summary.JoinDatesDefaulted)
	}
}

func readOptional(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	return os.ReadFile(path)
}
