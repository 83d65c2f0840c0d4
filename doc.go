// Package hxsel provides typed, validated construction of CSS compound
// selectors for server-rendered Go applications using Templ and HTMX.
//
// HTMX attributes like hx-target, hx-include, and hx-indicator take CSS
// selector values. Writing those as string literals scatters untyped,
// unchecked selector syntax through templates. hxsel replaces the literals
// with a fluent builder that enforces CSS ordering and cardinality rules at
// construction time and renders the canonical string form on demand.
//
// # Building Selectors
//
// Each selector part kind has a package-level entry point that starts a new
// builder, and a corresponding method for chaining further parts:
//
//	hxsel.Element("a").Attr(`href$=".png"`).PseudoClass("focus").String()
//	// a[href$=".png"]:focus
//
//	hxsel.ID("main").Class("container").Class("editable").String()
//	// #main.container.editable
//
// Parts must be added in CSS order: element, id, class, attribute,
// pseudo-class, pseudo-element. Element, id, and pseudo-element may appear at
// most once; class, attribute, and pseudo-class may repeat. A violating call
// leaves the builder unchanged and latches one of two sentinel errors,
// available via Err():
//
//	s := hxsel.Class("card").ID("main")
//	hxsel.IsOrderViolation(s.Err()) // true - id must precede class
//
// After an error latches, further part calls are no-ops; String still returns
// the text accumulated before the failure.
//
// # Combining Selectors
//
// Combine joins two selectors with a combinator string, taken verbatim:
//
//	hxsel.Combine(hxsel.Element("div"), hxsel.Child, hxsel.Class("item"))
//	// div > .item
//
// Named constants cover the standard CSS combinators (Descendant, Child,
// NextSibling, SubsequentSibling), but any string is accepted. Combined
// selectors nest arbitrarily - either operand may itself be the result of an
// earlier Combine.
//
// # HTMX Targets
//
// Target wraps the extended selector expressions HTMX accepts in hx-target:
//
//	hxsel.Closest(hxsel.Element("div").Class("card")) // closest div.card
//	hxsel.This()                                      // this
//
// # Attribute Helpers
//
// Helpers produce templ.Attributes for the selector-valued HTMX attributes:
//
//	<button { hxsel.TargetAttrs(hxsel.Closest(card))... }>
//
// These are thin map constructors; all other HTMX attributes are written
// directly in templates.
//
// # Design Rationale
//
// A builder is a plain mutable value with no internal locking - it is owned
// by the caller constructing it, and the part-addition sequence assumes
// exclusive access. Validation is a small state machine (highest kind reached
// plus a presence set) rather than per-kind boolean flags, which keeps the
// ordering rules in one place.
package hxsel
