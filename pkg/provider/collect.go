package provider

import (
	"context"
	"fmt"
)

// Reasons reported in CollectResult.StoppedAt.
const (
	StoppedMaxRecords  = "max_records"
	StoppedNoMorePages = "no_more_pages"
)

// Pager walks a paginated result set. HasNext reports whether Next may be
// called after the most recent First or Next.
type Pager[R any] interface {
	First(ctx context.Context) ([]R, error)
	Next(ctx context.Context) ([]R, error)
	HasNext() bool
}

// CollectResult holds the outcome of a Collect call.
type CollectResult[R any] struct {
	Records      []R
	PagesFetched int
	StoppedAt    string
}

// Collect accumulates records across pages until maxRecords records are held
// or the pager runs out of pages. The first page is always requested; further
// pages are requested only while the accumulator is below maxRecords, so the
// result holds min(maxRecords, total) records in page order.
//
// A failed page request returns a *QueryError and discards the records
// gathered so far.
func Collect[R any](
	ctx context.Context,
	p Pager[R],
	maxRecords int,
) (*CollectResult[R], error) {
	if maxRecords < 0 {
		return nil, fmt.Errorf("%w: maxRecords must be >= 0 (got %d)", ErrInvalidArgument, maxRecords)
	}

	page, err := p.First(ctx)
	if err != nil {
		return nil, &QueryError{Page: 0, Err: err}
	}

	result := &CollectResult[R]{
		Records:      make([]R, 0, min(maxRecords, len(page))),
		PagesFetched: 1,
	}

	for {
		for i := range page {
			if len(result.Records) >= maxRecords {
				break
			}
			result.Records = append(result.Records, page[i])
		}

		if len(result.Records) >= maxRecords {
			result.StoppedAt = StoppedMaxRecords
			return result, nil
		}

		if !p.HasNext() {
			result.StoppedAt = StoppedNoMorePages
			return result, nil
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err = p.Next(ctx)
		if err != nil {
			return nil, &QueryError{Page: result.PagesFetched, Err: err}
		}
		result.PagesFetched++
	}
}
