package youtube

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency is the number of searches BatchSearch runs at once
const DefaultBatchConcurrency = 4

// BatchSearchResult contains the results of a batch search.
// Responses is indexed like the input; failed entries are nil.
type BatchSearchResult struct {
	Requested int
	Responses []*SearchListResponse
	Failed    []SearchError
}

// SearchError contains information about a failed search in a batch
type SearchError struct {
	Index int
	Query string
	Err   error
}

// Error implements the error interface
func (e SearchError) Error() string {
	return fmt.Sprintf("search %d (%q) failed: %v", e.Index, e.Query, e.Err)
}

func (e SearchError) Unwrap() error {
	return e.Err
}

// BatchSearch runs independent searches concurrently with bounded
// parallelism. A failing search does not stop the others.
func (c *Client) BatchSearch(ctx context.Context, requests []SearchList, concurrency int) BatchSearchResult {
	result := BatchSearchResult{
		Requested: len(requests),
		Responses: make([]*SearchListResponse, len(requests)),
	}

	if len(requests) == 0 {
		return result
	}
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	errs := make([]error, len(requests))
	for i, req := range requests {
		g.Go(func() error {
			resp, err := c.Search(ctx, req)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Int("index", i).
					Str("query", req.Query()).
					Msg("Search failed")
				errs[i] = err
				return nil // Don't stop on individual errors
			}
			result.Responses[i] = resp
			return nil
		})
	}

	g.Wait()

	for i, err := range errs {
		if err != nil {
			result.Failed = append(result.Failed, SearchError{
				Index: i,
				Query: requests[i].Query(),
				Err:   err,
			})
		}
	}

	return result
}
