package layout

import "math"

// WidthConstraint describes the horizontal space offered to an element.
// Max is the available width; Expand reports whether the element must fill
// it exactly or may shrink to its content.
type WidthConstraint struct {
	Max    float64
	Expand bool
}

// Constrain resolves a natural content width against the constraint.
func (c WidthConstraint) Constrain(natural float64) float64 {
	if c.Expand {
		return c.Max
	}
	return math.Min(natural, c.Max)
}

// Fixed returns a constraint that forces exactly w.
func Fixed(w float64) WidthConstraint {
	return WidthConstraint{Max: w, Expand: true}
}

// UpTo returns a constraint that allows at most w.
func UpTo(w float64) WidthConstraint {
	return WidthConstraint{Max: w, Expand: false}
}

// Dim is an optional dimension. The zero value is None: the element
// contributes nothing in that direction and no surrounding gap materializes.
// Some(0) is distinct: present but zero-sized.
type Dim struct {
	value float64
	valid bool
}

// Some returns a present dimension of v.
func Some(v float64) Dim { return Dim{value: v, valid: true} }

// None returns the collapsed dimension.
func None() Dim { return Dim{} }

// IsSome reports whether the dimension is present.
func (d Dim) IsSome() bool { return d.valid }

// IsNone reports whether the dimension is collapsed.
func (d Dim) IsNone() bool { return !d.valid }

// Or returns the value, or def when collapsed.
func (d Dim) Or(def float64) float64 {
	if d.valid {
		return d.value
	}
	return def
}

// Add returns the dimension shifted by delta. None stays None.
func (d Dim) Add(delta float64) Dim {
	if !d.valid {
		return d
	}
	return Some(d.value + delta)
}

// MaxDim returns the larger of two dimensions, treating None as absent:
// if either side is None the other wins, and None is returned only when
// both are None.
func MaxDim(a, b Dim) Dim {
	switch {
	case !a.valid:
		return b
	case !b.valid:
		return a
	default:
		return Some(math.Max(a.value, b.value))
	}
}

// Size is an element's reported extent. Either dimension may be collapsed;
// a fully collapsed size contributes nothing to its container.
type Size struct {
	Width  Dim
	Height Dim
}

// FirstLocationUsage is the verdict of the cheap pre-measure check: whether
// an element would render content at the first offered location, advance
// past it before rendering, or consume no location at all.
type FirstLocationUsage int

const (
	// NoneHeight means the element consumes no location: a subsequent
	// measure yields a collapsed height and zero breaks.
	NoneHeight FirstLocationUsage = iota

	// WillUse means content renders at the first offered location.
	WillUse

	// WillSkip means the element advances past the first location before
	// rendering anything; a subsequent measure reports at least one break.
	WillSkip
)

func (u FirstLocationUsage) String() string {
	switch u {
	case NoneHeight:
		return "NoneHeight"
	case WillUse:
		return "WillUse"
	case WillSkip:
		return "WillSkip"
	default:
		return "Unknown"
	}
}

// BreakWouldHelp reports whether advancing to a fresh location of fullHeight
// offers more room than what remains. Elements suppress breaks when this is
// false: the content would overflow again with no benefit.
func BreakWouldHelp(fullHeight, heightAvailable float64) bool {
	return fullHeight > heightAvailable
}

// Edges is spacing on four sides.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll returns uniform edges.
func EdgeAll(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Gray returns a gray level, 0 black through 255 white.
func Gray(v uint8) Color { return Color{R: v, G: v, B: v} }

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// LineStyle describes an outline.
type LineStyle struct {
	Color Color
	Width float64
}
