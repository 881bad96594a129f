// Package pdfreplay provides a fluent API for replaying tokenized PDF page
// content streams onto a drawing canvas.
//
// Basic usage:
//
//	page, err := model.ParsePage(612, 792, content)
//	if err != nil {
//	    // handle error
//	}
//	rec := canvas.NewRecorder()
//	warnings, err := pdfreplay.Replay(page).To(rec)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfreplay.FormatWarnings(warnings))
//	}
//
// With options:
//
//	warnings, err := pdfreplay.Replay(page).
//	    Margin(10).
//	    PageBox(true).
//	    Logger(slog.Default()).
//	    To(canvas.NewSVG(632, 812))
//
// Multi-page documents are rendered concurrently, one canvas per page:
//
//	results, err := pdfreplay.FromDocument(doc).
//	    PageRange(1, 3).
//	    Render(ctx, func(p *model.Page) canvas.Canvas { return canvas.NewRecorder() })
//
// For finer control the interpreter package can be used directly.
package pdfreplay

import (
	"errors"

	"github.com/tsawler/pdfreplay/interpreter"
	"github.com/tsawler/pdfreplay/model"
)

// Warning is a non-fatal problem met while interpreting a page.
type Warning = interpreter.Warning

// Sentinel errors returned by the builder.
var (
	ErrNoPages        = errors.New("no pages to replay")
	ErrMultiplePages  = errors.New("more than one page selected; use Render")
	ErrNilDocument    = errors.New("nil document")
	ErrNilCanvasMaker = errors.New("nil canvas constructor")
	ErrInvalidRange   = errors.New("invalid page range")
)

// Replay returns a Replayer for a single page.
//
// Example:
//
//	warnings, err := pdfreplay.Replay(page).To(canvas.NewRecorder())
func Replay(page *model.Page) *Replayer {
	r := &Replayer{options: defaultOptions()}
	if page == nil {
		r.err = interpreter.ErrNilPage
		return r
	}
	r.pages = []*model.Page{page}
	return r
}

// FromDocument returns a Replayer over every page of doc. Use Pages or
// PageRange to narrow the selection.
//
// Example:
//
//	results, err := pdfreplay.FromDocument(doc).Pages(2).Render(ctx, newCanvas)
func FromDocument(doc *model.Document) *Replayer {
	r := &Replayer{options: defaultOptions()}
	if doc == nil {
		r.err = ErrNilDocument
		return r
	}
	r.pages = doc.Pages
	r.source = doc.Source
	return r
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	return interpreter.FormatWarnings(warnings)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdfreplay.Must(pdfreplay.FromDocument(doc).PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustWarnings is a helper that wraps a call to To and panics if the error
// is non-nil. It returns the warnings unchanged.
//
// Example:
//
//	warnings := pdfreplay.MustWarnings(pdfreplay.Replay(page).To(rec))
func MustWarnings(warnings []Warning, err error) []Warning {
	if err != nil {
		panic(err)
	}
	return warnings
}
