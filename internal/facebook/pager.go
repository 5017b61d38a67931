package facebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/donaldgifford/social-data-provider/internal/graph"
	"github.com/donaldgifford/social-data-provider/pkg/provider"
)

// decodingPager adapts a graph.Cursor to a provider.Pager by decoding each
// raw item into R.
type decodingPager[R any] struct {
	cursor graph.Cursor
	decode func(json.RawMessage) (R, error)
}

func newSchemaPager(cursor graph.Cursor) *decodingPager[Schema] {
	return &decodingPager[Schema]{cursor: cursor, decode: decodeSchema}
}

func (p *decodingPager[R]) First(ctx context.Context) ([]R, error) {
	page, err := p.cursor.First(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return p.decodePage(page)
}

func (p *decodingPager[R]) Next(ctx context.Context) ([]R, error) {
	page, err := p.cursor.Next(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return p.decodePage(page)
}

func (p *decodingPager[R]) HasNext() bool {
	return p.cursor.HasNext()
}

func (p *decodingPager[R]) decodePage(page *graph.Page) ([]R, error) {
	if page == nil {
		return nil, nil
	}
	records := make([]R, 0, len(page.Data))
	for i, raw := range page.Data {
		rec, err := p.decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding item %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeSchema(raw json.RawMessage) (Schema, error) {
	var s Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// classify marks Graph responses that rejected the session's credentials so
// the caller can log in again.
func classify(err error) error {
	if errors.Is(err, graph.ErrInvalidToken) || errors.Is(err, graph.ErrNotLoggedIn) {
		return fmt.Errorf("%w: %w", provider.ErrAuthRequired, err)
	}
	return err
}
