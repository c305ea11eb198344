// Package layout implements the measure/draw/page-break protocol at the heart
// of laser-pdf.
//
// A document is a tree of elements. Every element satisfies the same
// three-operation contract:
//
//  1. FirstLocationUsage: a cheap prediction of whether the element would
//     place content at a cramped first location, skip past it, or consume no
//     location at all.
//  2. Measure: compute the element's size without drawing. When the element
//     is allowed to span locations, the measure context carries out-parameters
//     reporting how many page advances were needed and the minimum height the
//     final location must offer for a later draw to reproduce them.
//  3. Draw: produce output through a sink surface while cooperatively
//     advancing locations through a break callback.
//
// The protocol's central guarantee is measure/draw consistency: for equal
// inputs, Measure and Draw report the same size and the same break count.
// Containers rely on this to measure children cheaply (possibly more than
// once) and then commit to a single draw.
//
// Heights grow downward and are expressed in points. A breaking element's
// reported height is the height it occupies on its final location; parents
// track earlier locations with their own cursors.
package layout
