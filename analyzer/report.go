package analyzer

import (
	"fmt"
	"os"

	"datadetective/domain/analysis"
	"datadetective/internal/errors"

	json "github.com/goccy/go-json"
)

// BuildReport assembles the full analysis document for one metric: the
// construction timestamp, the total record count (all records, not just
// those carrying the metric), the statistics in either their value or error
// form, and the anomaly list at the default threshold.
func (a *Analyzer) BuildReport(metric string) *analysis.Report {
	report := &analysis.Report{
		GeneratedAt:    a.createdAt.ReportString(),
		DataPoints:     len(a.data),
		AnalyzedMetric: metric,
		Anomalies:      a.DetectAnomalies(metric, DefaultThreshold),
	}

	statistics, err := a.Statistics(metric)
	if err != nil {
		report.Statistics = analysis.ErrorResult{Error: err.Error()}
	} else {
		report.Statistics = statistics
	}

	return report
}

// ExportReport writes the report for the metric to the destination path as
// pretty-printed UTF-8 JSON, overwriting any existing file. A failed write
// is returned to the caller unrecovered; there is no retry or fallback.
func (a *Analyzer) ExportReport(metric, destination string) (string, error) {
	report := a.BuildReport(metric)

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode report")
	}

	if err := os.WriteFile(destination, payload, 0o644); err != nil {
		return "", errors.WithCode(errors.CodeIOError,
			errors.Wrapf(err, "failed to write report to %s", destination))
	}

	return fmt.Sprintf("Report exported to %s", destination), nil
}
