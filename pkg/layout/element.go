package layout

// FirstLocationUsageCtx carries the inputs of the pre-measure check:
// the width on offer, the room left at the current location, and the room a
// fresh location would offer.
type FirstLocationUsageCtx struct {
	Width       WidthConstraint
	FirstHeight float64
	FullHeight  float64
}

// BreakableMeasure is present on a measure call when the element may span
// multiple locations. FullHeight is the room a fresh location offers.
// BreakCount and ExtraLocationMinHeight are out-parameters the element
// populates: the number of advances it required, and the minimum height the
// final location must have for a later draw to reproduce that break count.
// ExtraLocationMinHeight is only set when BreakCount is positive.
type BreakableMeasure struct {
	FullHeight float64

	BreakCount             int
	ExtraLocationMinHeight Dim
}

// MeasureCtx carries the inputs of a measure call. Breakable is nil when the
// element must treat the first location as its only one.
type MeasureCtx struct {
	Width       WidthConstraint
	FirstHeight float64
	Breakable   *BreakableMeasure
}

// WithFirstHeight returns a copy of the context with the first height
// replaced. The breakable sub-context, if any, is shared: out-parameters
// still land in the original BreakableMeasure.
func (ctx MeasureCtx) WithFirstHeight(h float64) MeasureCtx {
	ctx.FirstHeight = h
	return ctx
}

// BreakableDraw is present on a draw call when the element may span multiple
// locations. DoBreak requests and returns the location for page
// locationIdx+1; callers invoke it with nondecreasing indices. The height
// hint, when present, reports how much height the content ending on the page
// being left consumed, letting wrappers finalize per-page chrome.
//
// PreferredHeightBreakCount identifies the break index on which the
// context's preferred height applies: an element stretches its final
// location's height toward the preferred value only when it ends on that
// index.
type BreakableDraw struct {
	FullHeight                float64
	PreferredHeightBreakCount int
	DoBreak                   func(locationIdx int, heightHint Dim) Location
}

// DrawCtx carries the inputs of a draw call. PreferredHeight, when present,
// is a hint derived from a prior measurement that lets siblings be drawn to a
// uniform final height; elements without stretchable chrome ignore it.
type DrawCtx struct {
	Location        Location
	Width           WidthConstraint
	FirstHeight     float64
	PreferredHeight Dim
	Breakable       *BreakableDraw
}

// Element is the contract every layout node satisfies.
//
// FirstLocationUsage must be side-effect-free and should be cheap relative to
// a full measurement. Measure must not draw. Draw must return the size
// Measure would report for equivalent inputs and realize the same number of
// breaks.
type Element interface {
	FirstLocationUsage(ctx FirstLocationUsageCtx) FirstLocationUsage
	Measure(ctx MeasureCtx) Size
	Draw(ctx DrawCtx) Size
}

// FirstLocationUsageFromMeasure derives the pre-measure verdict from a full
// measurement. It is the fallback for elements with no cheaper local check:
// a collapsed, break-free result is NoneHeight; anything that fits the first
// location without breaking is WillUse; content that cannot start at the
// first location but could at a fresh one is WillSkip.
//
// The whole-content height is taken from an unbreakable measurement, so this
// is only suitable for elements that place content atomically (break-whole
// style); flowing elements use their own first-line checks.
func FirstLocationUsageFromMeasure(e Element, ctx FirstLocationUsageCtx) FirstLocationUsage {
	size := e.Measure(MeasureCtx{Width: ctx.Width, FirstHeight: ctx.FullHeight})
	if size.Height.IsNone() {
		return NoneHeight
	}
	h := size.Height.Or(0)
	if h <= ctx.FirstHeight || !BreakWouldHelp(ctx.FullHeight, ctx.FirstHeight) {
		return WillUse
	}
	return WillSkip
}
