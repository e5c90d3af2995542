// Package postgres provides an input-side record source: it reads the rows
// of a table into an in-memory dataset. Nothing is ever written back.
package postgres

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"time"

	"datadetective/domain/record"
	"datadetective/internal/errors"

	"github.com/jmoiron/sqlx"
)

// identPattern guards the table name interpolated into the query; sqlx
// placeholders cannot parameterize identifiers.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RecordSource reads table rows into records
type RecordSource struct {
	db *sqlx.DB
}

// NewRecordSource creates a record source over an open connection
func NewRecordSource(db *sqlx.DB) *RecordSource {
	return &RecordSource{db: db}
}

// Connect opens a PostgreSQL connection and verifies it
func Connect(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError,
			errors.Wrap(err, "failed to connect to database"))
	}
	return db, nil
}

// Fetch reads every row of the table into an ordered dataset. Column values
// arrive as driver types; they are normalized so numeric columns become
// float64 and text columns become string, matching what the analyzer expects.
func (s *RecordSource) Fetch(ctx context.Context, table string) (record.Dataset, error) {
	if !identPattern.MatchString(table) {
		return nil, errors.InvalidInput(fmt.Sprintf("invalid table name: %q", table))
	}

	rows, err := s.db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError,
			errors.Wrapf(err, "failed to query table %s", table))
	}
	defer rows.Close()

	dataset := make(record.Dataset, 0)
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, errors.WithCode(errors.CodeDatabaseError,
				errors.Wrap(err, "failed to scan row"))
		}

		rec := make(record.Record, len(row))
		for column, value := range row {
			rec[column] = normalizeValue(value)
		}
		dataset = append(dataset, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError,
			errors.Wrapf(err, "failed reading rows from %s", table))
	}

	log.Printf("[RecordSource] Loaded %d records from table %s", len(dataset), table)
	return dataset, nil
}

// normalizeValue maps driver values onto the scalar types records use. pq
// returns NUMERIC columns as []byte; those become float64 when they parse,
// string otherwise.
func normalizeValue(v any) any {
	switch value := v.(type) {
	case []byte:
		s := string(value)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return s
	case int64:
		return float64(value)
	case time.Time:
		return value.Format(time.RFC3339)
	case nil:
		return nil
	default:
		return value
	}
}
