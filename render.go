package pdfreplay

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/tsawler/pdfreplay/canvas"
	"github.com/tsawler/pdfreplay/interpreter"
	"github.com/tsawler/pdfreplay/model"
)

// PageResult is the outcome of replaying one page.
type PageResult struct {
	Page     *model.Page
	Canvas   canvas.Canvas
	Warnings []Warning
	Err      error
}

// RenderPages interprets pages concurrently, each onto its own canvas from
// newCanvas, using up to runtime.NumCPU() workers. The context is checked
// before every page starts. Results are returned in the order of pages; the
// returned error is the first per-page error in that order.
func RenderPages(ctx context.Context, pages []*model.Page, newCanvas func(*model.Page) canvas.Canvas, opts ...interpreter.Option) ([]PageResult, error) {
	return renderPages(ctx, pages, newCanvas, runtime.NumCPU(), opts)
}

func renderPages(ctx context.Context, pages []*model.Page, newCanvas func(*model.Page) canvas.Canvas, workers int, opts []interpreter.Option) ([]PageResult, error) {
	if newCanvas == nil {
		return nil, ErrNilCanvasMaker
	}
	if workers < 1 {
		workers = 1
	}

	in := interpreter.New(opts...)
	results := make([]PageResult, len(pages))

	// Use a buffered channel as a semaphore to limit concurrency
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, page := range pages {
		results[i].Page = page

		wg.Add(1)
		go func(i int, page *model.Page) {
			defer wg.Done()

			// Acquire semaphore
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[i].Err = pageErr(page, i, ctx.Err())
				return
			}
			defer func() { <-sem }()

			// Check context again
			select {
			case <-ctx.Done():
				results[i].Err = pageErr(page, i, ctx.Err())
				return
			default:
			}

			c := newCanvas(page)
			results[i].Canvas = c
			results[i].Warnings, results[i].Err = in.InterpretContext(ctx, page, c)
		}(i, page)
	}
	wg.Wait()

	for _, res := range results {
		if res.Err != nil {
			return results, res.Err
		}
	}
	return results, nil
}

// pageErr wraps err with the page number, falling back to the position
// when the page is unnumbered or missing.
func pageErr(page *model.Page, i int, err error) error {
	n := i + 1
	if page != nil && page.Number != 0 {
		n = page.Number
	}
	return fmt.Errorf("page %d: %w", n, err)
}
