// Package elements provides the layout nodes composed into document trees:
// text leaves, flow containers (Column, Row, Layers, BreakList), section
// wrappers (Titled, RepeatAfterBreak, RepeatBottom, ChangingTitle, PinBelow),
// decoration (StyledBox, Padded, HAlign) and pagination guards (BreakWhole,
// MinFirstHeight, ShrinkToFit, ForceBreak).
//
// Every element satisfies layout.Element. Multi-child containers collect
// their children through a content callback whose accumulator exposes Add
// methods returning itself; the callback may run more than once per layout
// pass (Row runs it for both width-distribution phases).
package elements
