// Package text turns strings into sized, breakable pieces and greedy lines.
//
// The layout core consumes this package as a black box: a Face supplies
// metrics, Pieces yields breakable units carrying widths and mandatory-break
// flags, and Lines folds pieces into lines against a maximum width. Both
// sequences are lazy and restartable, so a layout pass may walk them more
// than once.
package text
