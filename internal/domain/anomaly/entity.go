package anomaly

import "time"

// Report is an externally generated free-text analysis of one worker's one
// month of attendance. The system stores it verbatim and never interprets
// the content. At most one report exists per (worker, month); a new run
// replaces the prior one.
type Report struct {
	WorkerID    string
	MonthYear   string // YYYY-MM
	Anomalies   []string
	Summary     string
	GeneratedAt time.Time
}
