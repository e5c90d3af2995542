package app

import (
	"context"
	"log"
	"sync"

	"datadetective/analyzer"
	"datadetective/domain/analysis"
	"datadetective/internal/errors"

	"golang.org/x/sync/semaphore"
)

// defaultSweepConcurrency bounds how many per-field computations run at once.
const defaultSweepConcurrency = 4

// SweepService computes statistics for every numeric field of a dataset. The
// analyzer itself stays synchronous; the sweep fans out across fields with a
// weighted semaphore because each field's computation is independent of the
// others and the dataset is read-only.
type SweepService struct {
	sem   *semaphore.Weighted
	limit int64
}

// NewSweepService creates a sweep service with the given concurrency bound.
// A non-positive bound falls back to the default.
func NewSweepService(maxConcurrent int64) *SweepService {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultSweepConcurrency
	}
	return &SweepService{
		sem:   semaphore.NewWeighted(maxConcurrent),
		limit: maxConcurrent,
	}
}

// Run computes statistics for each numeric field, returning results in field
// name order (the order NumericFields reports). Fields are computed
// concurrently up to the service's bound; ctx cancellation aborts the sweep.
func (s *SweepService) Run(ctx context.Context, a *analyzer.Analyzer) ([]analysis.FieldStatistics, error) {
	fields := a.NumericFields()
	log.Printf("[Sweep] Computing statistics for %d numeric fields (limit %d)", len(fields), s.limit)

	results := make([]analysis.FieldStatistics, len(fields))
	var wg sync.WaitGroup

	for i, field := range fields {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, errors.Wrap(err, "sweep aborted while acquiring worker slot")
		}

		wg.Add(1)
		go func(i int, field string) {
			defer wg.Done()
			defer s.sem.Release(1)

			statistics, err := a.Statistics(field)
			if err != nil {
				// NumericFields guarantees at least one numeric value,
				// so this only fires if the caller races dataset mutation.
				log.Printf("[Sweep] Skipping field %q: %v", field, err)
				return
			}
			results[i] = analysis.FieldStatistics{Field: field, Statistics: statistics}
		}(i, field)
	}

	wg.Wait()

	swept := make([]analysis.FieldStatistics, 0, len(results))
	for _, r := range results {
		if r.Statistics != nil {
			swept = append(swept, r)
		}
	}
	return swept, nil
}
