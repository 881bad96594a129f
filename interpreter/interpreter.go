package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/tsawler/pdfreplay/canvas"
	"github.com/tsawler/pdfreplay/contentstream"
	"github.com/tsawler/pdfreplay/core"
	"github.com/tsawler/pdfreplay/font"
	"github.com/tsawler/pdfreplay/graphicsstate"
	"github.com/tsawler/pdfreplay/model"
	"github.com/tsawler/pdfreplay/resolver"
	"github.com/tsawler/pdfreplay/textlayout"
)

var (
	// ErrNilPage is returned when Interpret is given no page
	ErrNilPage = errors.New("nil page")
	// ErrNoContent is returned for a page without a content stream
	ErrNoContent = errors.New("page has no content stream")
	// ErrNilCanvas is returned when Interpret is given no canvas
	ErrNilCanvas = errors.New("nil canvas")
)

// Interpreter replays content streams onto canvases. It holds only
// configuration and is safe for concurrent use; every Interpret call
// works on its own state.
type Interpreter struct {
	margin   float64
	pageBox  bool
	layout   textlayout.Layout
	resolver resolver.Resolver
	logger   *slog.Logger
	fallback model.Color
	leading  float64
	font     font.Descriptor
	fontSize float64
}

// New creates an interpreter
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		layout:   textlayout.Metrics{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		fallback: FallbackColor,
		leading:  DefaultLeading,
		font:     font.Default(),
		fontSize: DefaultFontSize,
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Interpret replays page onto c. Problems with individual instructions are
// returned as warnings and never stop the page; only a missing page,
// content stream or canvas is an error.
func (in *Interpreter) Interpret(page *model.Page, c canvas.Canvas) ([]Warning, error) {
	return in.InterpretContext(context.Background(), page, c)
}

// InterpretContext is Interpret with cancellation checked between
// instructions. A cancelled context returns the warnings so far and the
// context's error.
func (in *Interpreter) InterpretContext(ctx context.Context, page *model.Page, c canvas.Canvas) ([]Warning, error) {
	if page == nil {
		return nil, ErrNilPage
	}
	if page.Operations == nil {
		return nil, ErrNoContent
	}
	if c == nil {
		return nil, ErrNilCanvas
	}

	s := in.newPageState(ctx, page, c)
	if in.pageBox {
		s.drawPageBox()
	}

	for i, op := range page.Operations {
		if err := ctx.Err(); err != nil {
			return s.warnings, fmt.Errorf("page %d: %w", page.Number, err)
		}
		s.index = i
		s.op = op
		s.execute(op)
	}

	in.logger.DebugContext(ctx, "page interpreted",
		"page", page.Number,
		"operations", len(page.Operations),
		"warnings", len(s.warnings))
	return s.warnings, nil
}

// pageState is everything one Interpret call mutates
type pageState struct {
	ctx    context.Context
	in     *Interpreter
	page   *model.Page
	canvas canvas.Canvas
	res    resolver.Resolver

	stack *graphicsstate.Stack
	text  graphicsstate.TextState
	path  *graphicsstate.Path

	index    int
	op       contentstream.Operation
	warnings []Warning
}

func (in *Interpreter) newPageState(ctx context.Context, page *model.Page, c canvas.Canvas) *pageState {
	res := in.resolver
	if res == nil {
		res = resolver.FromDict(page.Resources)
	}
	return &pageState{
		ctx:    ctx,
		in:     in,
		page:   page,
		canvas: c,
		res:    res,
		stack:  graphicsstate.NewStack(graphicsstate.NewGraphicsState()),
		text:   graphicsstate.NewTextState(in.font, in.fontSize, in.leading),
		path:   graphicsstate.NewPath(),
	}
}

func (s *pageState) gs() *graphicsstate.GraphicsState {
	return s.stack.Current()
}

// warn records a warning against the current instruction
func (s *pageState) warn(kind WarningKind, format string, args ...any) {
	w := Warning{
		Index:    s.index,
		Operator: s.op.Operator,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	}
	s.warnings = append(s.warnings, w)

	level := slog.LevelWarn
	if kind == WarnUnsupported {
		level = slog.LevelDebug
	}
	s.in.logger.Log(s.ctx, level, w.Message,
		"page", s.page.Number,
		"index", w.Index,
		"operator", w.Operator,
		"kind", w.Kind.String())
}

// execute applies one instruction. Handlers validate all operands before
// changing any state, so a malformed instruction has no effect.
func (s *pageState) execute(op contentstream.Operation) {
	var err error

	switch code := op.Op(); code {
	// Graphics state operators
	case contentstream.OpSave:
		s.stack.Save()
	case contentstream.OpRestore:
		if !s.stack.Restore() {
			s.in.logger.DebugContext(s.ctx, "restore without save", "page", s.page.Number, "index", s.index)
		}
	case contentstream.OpConcat:
		err = s.concat(op.Operands)
	case contentstream.OpLineWidth:
		err = s.lineWidth(op.Operands)

	// Path construction operators
	case contentstream.OpMoveTo, contentstream.OpLineTo, contentstream.OpCurveTo,
		contentstream.OpCurveToV, contentstream.OpCurveToY, contentstream.OpClosePath,
		contentstream.OpRectangle:
		err = s.construct(code, op.Operands)

	// Path painting operators
	case contentstream.OpStroke, contentstream.OpCloseStroke, contentstream.OpFill,
		contentstream.OpFillEvenOdd, contentstream.OpFillStroke, contentstream.OpFillStrokeEvenOdd,
		contentstream.OpCloseFillStroke, contentstream.OpCloseFillStrokeEvenOdd, contentstream.OpEndPath:
		s.paint(code)

	// Colour operators
	case contentstream.OpFillGray, contentstream.OpStrokeGray,
		contentstream.OpFillRGB, contentstream.OpStrokeRGB,
		contentstream.OpFillCMYK, contentstream.OpStrokeCMYK:
		err = s.deviceColor(code, op.Operands)
	case contentstream.OpFillColorSpace, contentstream.OpStrokeColorSpace:
		err = s.colorSpace(code, op.Operands)
	case contentstream.OpFillColor, contentstream.OpStrokeColor,
		contentstream.OpFillColorN, contentstream.OpStrokeColorN:
		err = s.color(code, op.Operands)

	// Text operators
	case contentstream.OpBeginText:
		s.text.BeginText()
	case contentstream.OpEndText:
	case contentstream.OpCharSpacing, contentstream.OpWordSpacing, contentstream.OpHorizScaling,
		contentstream.OpLeading, contentstream.OpRise, contentstream.OpRenderMode:
		err = s.textParam(code, op.Operands)
	case contentstream.OpFont:
		err = s.setFont(op.Operands)
	case contentstream.OpMoveText, contentstream.OpMoveTextLead, contentstream.OpTextMatrix,
		contentstream.OpNextLine:
		err = s.position(code, op.Operands)
	case contentstream.OpShowText, contentstream.OpShowTextArray,
		contentstream.OpNextLineShow, contentstream.OpNextLineSpaced:
		err = s.show(code, op.Operands)

	// Marked content and compatibility sections carry no drawing
	case contentstream.OpMarkPoint, contentstream.OpMarkPointProps,
		contentstream.OpBeginMarked, contentstream.OpBeginMarkedPr, contentstream.OpEndMarked,
		contentstream.OpBeginCompat, contentstream.OpEndCompat:

	case contentstream.OpUnknown:
		s.warn(WarnUnknown, "unknown operator %q", op.Operator)

	default:
		s.warn(WarnUnsupported, "%s not supported", op.Operator)
	}

	if err != nil {
		s.warn(WarnMalformed, "%v", err)
	}
}

// concat handles cm
func (s *pageState) concat(operands []core.Object) error {
	v, err := numbers(operands, 6)
	if err != nil {
		return err
	}
	s.gs().Transform(model.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]})
	return nil
}

// lineWidth handles w
func (s *pageState) lineWidth(operands []core.Object) error {
	v, err := numbers(operands, 1)
	if err != nil {
		return err
	}
	if v[0] < 0 {
		return fmt.Errorf("negative line width %g", v[0])
	}
	s.gs().LineWidth = v[0]
	return nil
}

// device maps a point in the page's default user space to canvas
// coordinates. This is the only place the vertical flip happens.
func (s *pageState) device(p model.Point) model.Point {
	m := s.in.margin
	return model.Point{X: m + p.X, Y: m + s.page.Height - p.Y}
}

// scale is the factor by which the CTM scales lengths, used for line
// widths and font sizes
func (s *pageState) scale() float64 {
	ctm := s.gs().CTM
	return math.Sqrt(math.Abs(ctm[0]*ctm[3] - ctm[1]*ctm[2]))
}

// drawPageBox paints the media box before the content stream
func (s *pageState) drawPageBox() {
	mb := s.page.MediaBox()
	if mb.IsEmpty() {
		return
	}
	box := graphicsstate.NewPath()
	box.Rectangle(mb.X, mb.Y, mb.Width, mb.Height, model.Identity())

	s.emitPath(box)
	s.canvas.FillPath(model.White, canvas.NonZero)
	s.emitPath(box)
	s.canvas.StrokePath(model.Black, 0.5)
}
