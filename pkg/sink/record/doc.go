// Package record provides an output sink that captures drawing operations
// instead of emitting bytes. It backs the layout test harness and the JSON
// render artifact: every page holds the ordered operations drawn onto it
// plus the height hint reported when the page was left.
package record
