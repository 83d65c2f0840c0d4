package hxsel

// Standard CSS combinators for use with Combine.
//
// Combine accepts any string verbatim; these constants cover the combinators
// CSS defines. Note that Descendant is itself a space, so combining with it
// produces three consecutive spaces (the combinator plus the mandatory
// padding space on each side) - CSS collapses the run when matching.
const (
	// Descendant matches elements anywhere inside the left operand.
	Descendant = " "

	// Child matches direct children of the left operand.
	Child = ">"

	// NextSibling matches the element immediately following the left operand.
	NextSibling = "+"

	// SubsequentSibling matches any later sibling of the left operand.
	SubsequentSibling = "~"

	// Column matches cells belonging to the column of the left operand.
	Column = "||"
)
