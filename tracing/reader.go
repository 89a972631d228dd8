package tracing

import (
	"context"

	"github.com/sarchlab/coretb/datarecording"
	"github.com/sarchlab/coretb/sim/timing"
)

// A SampleQuery selects samples of a SQLite trace.
type SampleQuery struct {
	From  timing.VTime
	Limit int
	// IllegalOnly keeps the samples where the illegal flag is raised.
	IllegalOnly bool
}

// SQLiteTrace reads a trace written by SQLiteSink.
type SQLiteTrace struct {
	reader datarecording.DataReader
}

// OpenSQLiteTrace opens a trace for reading.
func OpenSQLiteTrace(path string) (*SQLiteTrace, error) {
	reader, err := datarecording.NewReader(path)
	if err != nil {
		return nil, err
	}

	reader.MapTable(SampleTable, SignalSample{})
	reader.MapTable(datarecording.ExecTable, datarecording.ExecInfo{})

	return &SQLiteTrace{reader: reader}, nil
}

// Samples returns the samples matching q in time order, and the number of
// samples matching q without the limit.
func (t *SQLiteTrace) Samples(
	ctx context.Context,
	q SampleQuery,
) ([]SignalSample, int, error) {
	params := datarecording.QueryParams{
		Where:   "Time >= ?",
		Args:    []any{int64(q.From)},
		OrderBy: "Time ASC",
		Limit:   q.Limit,
	}

	if q.IllegalOnly {
		params.Where += " AND Illegal = 1"
	}

	results, total, err := t.reader.Query(ctx, SampleTable, params)
	if err != nil {
		return nil, 0, err
	}

	samples := make([]SignalSample, 0, len(results))
	for _, r := range results {
		samples = append(samples, *r.(*SignalSample))
	}

	return samples, total, nil
}

// RunInfo returns the run metadata in recording order.
func (t *SQLiteTrace) RunInfo(ctx context.Context) ([]datarecording.ExecInfo, error) {
	results, _, err := t.reader.Query(ctx, datarecording.ExecTable,
		datarecording.QueryParams{})
	if err != nil {
		return nil, err
	}

	info := make([]datarecording.ExecInfo, 0, len(results))
	for _, r := range results {
		info = append(info, *r.(*datarecording.ExecInfo))
	}

	return info, nil
}

// Close closes the trace.
func (t *SQLiteTrace) Close() error {
	return t.reader.Close()
}
