package main

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"datadetective/adapters/ingest"
	"datadetective/adapters/postgres"
	"datadetective/analyzer"
	"datadetective/app"
	"datadetective/domain/record"
	"datadetective/internal/config"
)

var (
	inputFile string
	dbTable   string
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Descriptive statistics, anomaly detection and grouping over tabular records",
	}

	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "CSV or XLSX file to analyze (defaults to DATA_FILE)")
	rootCmd.PersistentFlags().StringVar(&dbTable, "table", "", "PostgreSQL table to analyze (needs DATABASE_URL)")

	rootCmd.AddCommand(
		newFieldsCmd(),
		newStatsCmd(),
		newAnomaliesCmd(),
		newGroupsCmd(),
		newProfileCmd(),
		newSweepCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List all fields with at least one numeric value",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildAnalyzer(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(a.NumericFields())
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [metric]",
		Short: "Compute mean, median, standard deviation and range for a metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildAnalyzer(cmd.Context())
			if err != nil {
				return err
			}
			statistics, err := a.Statistics(args[0])
			if err != nil {
				return err
			}
			return printJSON(statistics)
		},
	}
}

func newAnomaliesCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "anomalies [metric]",
		Short: "Flag values deviating more than threshold standard deviations from the mean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildAnalyzer(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(a.DetectAnomalies(args[0], threshold))
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", analyzer.DefaultThreshold, "deviation multiplier")
	return cmd
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups [group-key] [metric]",
		Short: "Group records by a categorical key and aggregate a numeric metric",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildAnalyzer(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(a.GroupAndAggregate(args[0], args[1]))
		},
	}
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [metric]",
		Short: "Extended distribution profile: quartiles, skewness, kurtosis, normality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildAnalyzer(cmd.Context())
			if err != nil {
				return err
			}
			profile, err := a.ProfileField(args[0])
			if err != nil {
				return err
			}
			return printJSON(profile)
		},
	}
}

func newSweepCmd() *cobra.Command {
	var concurrency int64

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compute statistics for every numeric field",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildAnalyzer(cmd.Context())
			if err != nil {
				return err
			}
			results, err := app.NewSweepService(concurrency).Run(cmd.Context(), a)
			if err != nil {
				return err
			}
			return printJSON(results)
		},
	}

	cmd.Flags().Int64Var(&concurrency, "concurrency", 0, "max concurrent field computations (0 = default)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [metric]",
		Short: "Write the full JSON analysis report for a metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.Report.Path
			}

			a, err := buildAnalyzer(cmd.Context())
			if err != nil {
				return err
			}
			message, err := a.ExportReport(args[0], out)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "report destination (defaults to REPORT_PATH)")
	return cmd
}

// buildAnalyzer loads records from the selected source and wraps them in an
// analyzer. --table wins over --input; --input wins over DATA_FILE.
func buildAnalyzer(ctx context.Context) (*analyzer.Analyzer, error) {
	records, err := loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return analyzer.New(records), nil
}

func loadRecords(ctx context.Context) (record.Dataset, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if dbTable != "" {
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("--table requires DATABASE_URL to be set")
		}
		db, err := postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return postgres.NewRecordSource(db).Fetch(ctx, dbTable)
	}

	path := inputFile
	if path == "" {
		path = cfg.Data.File
	}
	if path == "" {
		return nil, fmt.Errorf("no data source: pass --input/--table or set DATA_FILE")
	}
	return ingest.NewDataReader(path).ReadRecords()
}

func printJSON(payload any) error {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
