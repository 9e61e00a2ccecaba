package anomaly

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/wagewise/wagewise-backend-go/internal/domain/anomaly"
)

// GenkitDetector analyzes attendance data with a Gemini model through Genkit,
// asking for structured {anomalies, summary} output.
type GenkitDetector struct {
	g *genkit.Genkit
}

func NewGenkitDetector(ctx context.Context, apiKey, model string) *GenkitDetector {
	g := genkit.Init(ctx,
		genkit.WithPlugins(&googlegenai.GoogleAI{APIKey: apiKey}),
		genkit.WithDefaultModel(model),
	)
	return &GenkitDetector{g: g}
}

// Detect implements anomaly.Detector.
func (d *GenkitDetector) Detect(ctx context.Context, input anomaly.DetectionInput) (anomaly.DetectionOutput, error) {
	prompt := fmt.Sprintf(`You are an expert in analyzing attendance data to detect anomalies.

Analyze the following attendance data for worker ID %s for the month of %s.

Attendance Data: %s

Identify any unusual patterns, such as sudden spikes in absences, unusual half-day requests, or any other discrepancies.

Provide a summary of your analysis and a list of any anomalies detected.`,
		input.WorkerID, input.Month, input.AttendanceData)

	output, _, err := genkit.GenerateData[anomaly.DetectionOutput](ctx, d.g,
		ai.WithPrompt(prompt),
	)
	if err != nil {
		return anomaly.DetectionOutput{}, fmt.Errorf("failed to generate anomaly analysis: %w", err)
	}

	return *output, nil
}
