package hxsel

// Target is an extended selector expression as accepted by hx-target.
//
// HTMX extends plain CSS selectors with positional modifiers that resolve
// relative to the triggering element (this, closest, find, next, previous).
// Target wraps the rendered expression; construct one with the functions
// below and pass it to TargetAttrs, or embed its String output directly.
//
// Target is an immutable value - every constructor returns the finished
// expression, and String performs no validation (matching the Selector
// stringification contract).
type Target struct {
	expr string
}

// This targets the element that triggered the request.
func This() Target {
	return Target{expr: "this"}
}

// Of targets the selector as-is, with no positional modifier.
func Of(s *Selector) Target {
	return Target{expr: s.String()}
}

// Closest targets the nearest ancestor (or the element itself) matching the
// selector.
//
//	hxsel.Closest(hxsel.Element("tr")) // "closest tr"
func Closest(s *Selector) Target {
	return Target{expr: "closest " + s.String()}
}

// Find targets the first descendant of the triggering element matching the
// selector.
func Find(s *Selector) Target {
	return Target{expr: "find " + s.String()}
}

// Next targets the element immediately following the triggering element.
func Next() Target {
	return Target{expr: "next"}
}

// NextOf targets the next element in the document matching the selector,
// scanning forward from the triggering element.
func NextOf(s *Selector) Target {
	return Target{expr: "next " + s.String()}
}

// Previous targets the element immediately preceding the triggering element.
func Previous() Target {
	return Target{expr: "previous"}
}

// PreviousOf targets the previous element in the document matching the
// selector, scanning backward from the triggering element.
func PreviousOf(s *Selector) Target {
	return Target{expr: "previous " + s.String()}
}

// String returns the target expression text.
func (t Target) String() string {
	return t.expr
}
