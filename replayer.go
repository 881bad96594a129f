package pdfreplay

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tsawler/pdfreplay/canvas"
	"github.com/tsawler/pdfreplay/interpreter"
	"github.com/tsawler/pdfreplay/model"
	"github.com/tsawler/pdfreplay/resolver"
	"github.com/tsawler/pdfreplay/textlayout"
)

// Replayer provides a fluent interface for replaying pages onto canvases.
// Each configuration method returns a new Replayer instance, making it
// safe for concurrent use and allowing method chaining.
type Replayer struct {
	// Source
	pages  []*model.Page
	source string

	// Configuration
	options ReplayOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Replayer with a deep copy of options.
// The page list is shared; pages are never modified.
func (r *Replayer) clone() *Replayer {
	return &Replayer{
		pages:   r.pages,
		source:  r.source,
		options: r.options.clone(),
		err:     r.err,
	}
}

// ============================================================================
// Configuration
// ============================================================================

// Pages selects specific pages (1-indexed).
//
// Example:
//
//	results, err := pdfreplay.FromDocument(doc).Pages(1, 3, 5).Render(ctx, newCanvas)
func (r *Replayer) Pages(pages ...int) *Replayer {
	newRep := r.clone()
	newRep.options.pages = append(newRep.options.pages, pages...)
	return newRep
}

// PageRange selects a range of pages (1-indexed, inclusive).
//
// Example:
//
//	results, err := pdfreplay.FromDocument(doc).PageRange(5, 10).Render(ctx, newCanvas)
func (r *Replayer) PageRange(start, end int) *Replayer {
	newRep := r.clone()
	if start < 1 || start > end {
		if newRep.err == nil {
			newRep.err = fmt.Errorf("%w: %d-%d", ErrInvalidRange, start, end)
		}
		return newRep
	}
	for i := start; i <= end; i++ {
		newRep.options.pages = append(newRep.options.pages, i)
	}
	return newRep
}

// Margin sets the device-space offset added on every side of the page.
func (r *Replayer) Margin(m float64) *Replayer {
	newRep := r.clone()
	newRep.options.margin = m
	return newRep
}

// PageBox enables drawing a white page rectangle with a black outline
// before the content.
func (r *Replayer) PageBox(enabled bool) *Replayer {
	newRep := r.clone()
	newRep.options.pageBox = enabled
	return newRep
}

// Layout sets the text measurer used to advance the text position.
func (r *Replayer) Layout(l textlayout.Layout) *Replayer {
	newRep := r.clone()
	newRep.options.layout = l
	return newRep
}

// Resolver overrides the resources of every page with res.
func (r *Replayer) Resolver(res resolver.Resolver) *Replayer {
	newRep := r.clone()
	newRep.options.resolver = res
	return newRep
}

// Logger sets the structured logger that receives per-instruction
// diagnostics.
func (r *Replayer) Logger(l *slog.Logger) *Replayer {
	newRep := r.clone()
	newRep.options.logger = l
	return newRep
}

// FallbackColor sets the colour used for patterns and unresolved colour
// spaces.
func (r *Replayer) FallbackColor(c model.Color) *Replayer {
	newRep := r.clone()
	newRep.options.fallback = &c
	return newRep
}

// Workers bounds how many pages Render interprets at once. Values below 1
// mean one worker.
func (r *Replayer) Workers(n int) *Replayer {
	newRep := r.clone()
	newRep.options.workers = max(n, 1)
	return newRep
}

// ============================================================================
// Terminal operations
// ============================================================================

// PageCount returns the number of pages available to the Replayer, before
// any page selection is applied.
func (r *Replayer) PageCount() (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return len(r.pages), nil
}

// To replays the selected page onto c. Exactly one page must be selected.
//
// Example:
//
//	rec := canvas.NewRecorder()
//	warnings, err := pdfreplay.Replay(page).Margin(10).To(rec)
func (r *Replayer) To(c canvas.Canvas) ([]Warning, error) {
	return r.ToContext(context.Background(), c)
}

// ToContext is To with cancellation.
func (r *Replayer) ToContext(ctx context.Context, c canvas.Canvas) ([]Warning, error) {
	pages, err := r.selectedPages()
	if err != nil {
		return nil, err
	}
	if len(pages) > 1 {
		return nil, fmt.Errorf("%w (%d pages)", ErrMultiplePages, len(pages))
	}

	in := interpreter.New(r.options.interpreterOptions()...)
	warnings, err := in.InterpretContext(ctx, pages[0], c)
	return warnings, r.wrap(err)
}

// Render replays every selected page concurrently, each onto the canvas
// returned by newCanvas for that page. Results come back in page order.
//
// Example:
//
//	results, err := pdfreplay.FromDocument(doc).Render(ctx, func(p *model.Page) canvas.Canvas {
//	    return canvas.NewSVG(p.Width, p.Height)
//	})
func (r *Replayer) Render(ctx context.Context, newCanvas func(*model.Page) canvas.Canvas) ([]PageResult, error) {
	pages, err := r.selectedPages()
	if err != nil {
		return nil, err
	}
	results, err := renderPages(ctx, pages, newCanvas, r.options.workers, r.options.interpreterOptions())
	return results, r.wrap(err)
}

// ============================================================================
// Internal helpers
// ============================================================================

// wrap prefixes err with the document source, when there is one.
func (r *Replayer) wrap(err error) error {
	if err == nil || r.source == "" {
		return err
	}
	return fmt.Errorf("%s: %w", r.source, err)
}

// selectedPages resolves the 1-indexed page selection against the page
// list. If no pages are specified, all pages are returned.
func (r *Replayer) selectedPages() ([]*model.Page, error) {
	if r.err != nil {
		return nil, r.err
	}
	pageCount := len(r.pages)
	if pageCount == 0 {
		return nil, ErrNoPages
	}

	// If no pages specified, use all pages
	if len(r.options.pages) == 0 {
		return r.pages, nil
	}

	// Convert 1-indexed to 0-indexed and validate
	seen := make(map[int]bool)
	var indices []int
	for _, p := range r.options.pages {
		if p < 1 || p > pageCount {
			return nil, r.wrap(fmt.Errorf("page %d out of range (1-%d)", p, pageCount))
		}
		zeroIndexed := p - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			indices = append(indices, zeroIndexed)
		}
	}

	// Sort pages in order
	sort.Ints(indices)

	pages := make([]*model.Page, len(indices))
	for i, idx := range indices {
		pages[i] = r.pages[idx]
	}
	return pages, nil
}
