package layout

import "testing"

func TestWidthConstraintConstrain(t *testing.T) {
	tests := []struct {
		name    string
		c       WidthConstraint
		natural float64
		want    float64
	}{
		{name: "expand forces max", c: Fixed(100), natural: 30, want: 100},
		{name: "shrinks to content", c: UpTo(100), natural: 30, want: 30},
		{name: "clamps to max", c: UpTo(100), natural: 130, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Constrain(tt.natural); got != tt.want {
				t.Errorf("Constrain(%v) = %v, want %v", tt.natural, got, tt.want)
			}
		})
	}
}

func TestDim(t *testing.T) {
	if None().IsSome() {
		t.Error("None must not be present")
	}
	if !Some(0).IsSome() {
		t.Error("Some(0) is present, distinct from None")
	}
	if got := None().Or(7); got != 7 {
		t.Errorf("None.Or(7) = %v, want 7", got)
	}
	if got := Some(3).Add(2).Or(0); got != 5 {
		t.Errorf("Some(3).Add(2) = %v, want 5", got)
	}
	if None().Add(2).IsSome() {
		t.Error("None.Add must stay collapsed")
	}
}

func TestMaxDim(t *testing.T) {
	tests := []struct {
		name string
		a, b Dim
		want Dim
	}{
		{name: "both present", a: Some(3), b: Some(5), want: Some(5)},
		{name: "left collapsed", a: None(), b: Some(5), want: Some(5)},
		{name: "right collapsed", a: Some(3), b: None(), want: Some(3)},
		{name: "both collapsed", a: None(), b: None(), want: None()},
		{name: "zero beats collapsed", a: Some(0), b: None(), want: Some(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxDim(tt.a, tt.b); got != tt.want {
				t.Errorf("MaxDim(%+v, %+v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBreakWouldHelp(t *testing.T) {
	if !BreakWouldHelp(10, 4) {
		t.Error("a taller fresh location helps")
	}
	if BreakWouldHelp(10, 10) {
		t.Error("an equal fresh location does not help")
	}
	if BreakWouldHelp(4, 10) {
		t.Error("a shorter fresh location does not help")
	}
}

func TestEdges(t *testing.T) {
	e := Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if got := e.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %v, want 6", got)
	}
	if got := e.Vertical(); got != 4 {
		t.Errorf("Vertical() = %v, want 4", got)
	}
	if EdgeAll(2) != (Edges{2, 2, 2, 2}) {
		t.Errorf("EdgeAll(2) = %+v", EdgeAll(2))
	}
}

// stubElement realizes a fixed height and breaks once when it does not fit.
type stubElement struct {
	height float64
}

func (s stubElement) FirstLocationUsage(ctx FirstLocationUsageCtx) FirstLocationUsage {
	return FirstLocationUsageFromMeasure(s, ctx)
}

func (s stubElement) Measure(ctx MeasureCtx) Size {
	if ctx.Breakable != nil && s.height > ctx.FirstHeight &&
		BreakWouldHelp(ctx.Breakable.FullHeight, ctx.FirstHeight) {
		ctx.Breakable.BreakCount = 1
		ctx.Breakable.ExtraLocationMinHeight = Some(s.height)
	}
	return Size{Width: Some(ctx.Width.Max), Height: Some(s.height)}
}

func (s stubElement) Draw(ctx DrawCtx) Size {
	if ctx.Breakable != nil && s.height > ctx.FirstHeight &&
		BreakWouldHelp(ctx.Breakable.FullHeight, ctx.FirstHeight) {
		ctx.Breakable.DoBreak(0, None())
	}
	return Size{Width: Some(ctx.Width.Max), Height: Some(s.height)}
}

func TestFirstLocationUsageFromMeasure(t *testing.T) {
	tests := []struct {
		name        string
		height      float64
		first, full float64
		want        FirstLocationUsage
	}{
		{name: "fits", height: 5, first: 10, full: 20, want: WillUse},
		{name: "skips", height: 15, first: 10, full: 20, want: WillSkip},
		{name: "overflows in place", height: 15, first: 10, full: 10, want: WillUse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstLocationUsageFromMeasure(stubElement{height: tt.height}, FirstLocationUsageCtx{
				Width: UpTo(50), FirstHeight: tt.first, FullHeight: tt.full,
			})
			if got != tt.want {
				t.Errorf("usage = %v, want %v", got, tt.want)
			}
		})
	}
}
