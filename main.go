package main

import (
	"fmt"
	"log"

	"datadetective/analyzer"
	"datadetective/domain/record"
)

// Demo walkthrough over a small batch of sensor readings. The analysis
// library is the product; this entrypoint just exercises each operation.
func main() {
	sensorData := record.Dataset{
		{"timestamp": "2025-11-25 12:00", "temperature": 22.5, "humidity": 45, "sensor_id": "A1"},
		{"timestamp": "2025-11-25 12:05", "temperature": 23.1, "humidity": 46, "sensor_id": "A1"},
		{"timestamp": "2025-11-25 12:10", "temperature": 45.8, "humidity": 47, "sensor_id": "A1"},
		{"timestamp": "2025-11-25 12:15", "temperature": 22.9, "humidity": 44, "sensor_id": "A1"},
		{"timestamp": "2025-11-25 12:20", "temperature": 23.3, "humidity": 45, "sensor_id": "A1"},
	}

	a := analyzer.New(sensorData)

	fmt.Println("AVAILABLE NUMERIC METRICS:")
	for _, field := range a.NumericFields() {
		fmt.Printf("  -> %s\n", field)
	}

	for _, metric := range []string{"temperature", "humidity"} {
		fmt.Printf("\n%s STATISTICS:\n", metric)
		statistics, err := a.Statistics(metric)
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		fmt.Printf("  count:   %d\n", statistics.Count)
		fmt.Printf("  mean:    %.2f\n", statistics.Mean)
		fmt.Printf("  median:  %v\n", statistics.Median)
		fmt.Printf("  std_dev: %.2f\n", statistics.StdDev)
		fmt.Printf("  min:     %v\n", statistics.Min)
		fmt.Printf("  max:     %v\n", statistics.Max)
		fmt.Printf("  range:   %v\n", statistics.Range)
	}

	anomalies := a.DetectAnomalies("temperature", analyzer.DefaultThreshold)
	fmt.Printf("\nTEMPERATURE ANOMALIES DETECTED: %d\n", len(anomalies))
	for _, anomaly := range anomalies {
		fmt.Printf("  -> Index %d: %v (Deviation: %.2f sigma)\n",
			anomaly.FilteredIndex, anomaly.Value, anomaly.Deviation)
	}

	fmt.Println("\nGROUPING BY SENSOR ID:")
	for _, group := range a.GroupAndAggregate("sensor_id", "temperature") {
		fmt.Printf("  Sensor %v: count=%d total=%v average=%v min=%v max=%v\n",
			group.Group, group.Count, group.Total, group.Average, group.Min, group.Max)
	}

	message, err := a.ExportReport("temperature", "analytics_report.json")
	if err != nil {
		log.Fatalf("Report export failed: %v", err)
	}
	fmt.Println("\n" + message)
}
