package hxsel

import "github.com/a-h/templ"

// Expr is any selector-like expression that renders to a string.
// *Selector, Target, and Raw all satisfy it.
type Expr interface {
	String() string
}

// Raw adapts a hand-written selector expression to Expr.
//
// It is the escape hatch for expressions hxsel does not model, or for
// strings retrieved from a Registry:
//
//	hxsel.TargetAttrs(hxsel.Raw(reg.MustGet("row")))
type Raw string

// String returns the raw expression unchanged.
func (r Raw) String() string {
	return string(r)
}

// TargetAttrs builds the hx-target attribute for a selector expression.
//
// This is the primary bridge into templates:
//
//	<button { hxsel.TargetAttrs(hxsel.Closest(card))... }>
//
// Only the selector-valued attribute is produced - the request attributes
// (hx-get, hx-post, ...) and everything else are written directly by the
// user in their templates.
func TargetAttrs(e Expr) templ.Attributes {
	return templ.Attributes{"hx-target": e.String()}
}

// IncludeAttrs builds the hx-include attribute, which adds the values of
// elements matching the expression to the request.
func IncludeAttrs(e Expr) templ.Attributes {
	return templ.Attributes{"hx-include": e.String()}
}

// IndicatorAttrs builds the hx-indicator attribute, naming the element that
// receives the htmx-request class while a request is in flight.
func IndicatorAttrs(e Expr) templ.Attributes {
	return templ.Attributes{"hx-indicator": e.String()}
}

// DisabledEltAttrs builds the hx-disabled-elt attribute, naming elements to
// disable for the duration of a request.
func DisabledEltAttrs(e Expr) templ.Attributes {
	return templ.Attributes{"hx-disabled-elt": e.String()}
}

// SwapOOBAttrs builds the hx-swap-oob attribute, marking response content to
// be swapped out-of-band into the element matching the expression. Mode is
// an htmx swap strategy ("outerHTML", "beforeend", ...); empty mode renders
// the default "true":
//
//	hxsel.SwapOOBAttrs("beforeend", hxsel.ID("toasts")) // hx-swap-oob="beforeend:#toasts"
//	hxsel.SwapOOBAttrs("", hxsel.New())                 // hx-swap-oob="true"
func SwapOOBAttrs(mode string, e Expr) templ.Attributes {
	v := mode
	if v == "" {
		v = "true"
	}
	if s := e.String(); s != "" {
		v += ":" + s
	}
	return templ.Attributes{"hx-swap-oob": v}
}

// SyncAttrs builds the hx-sync attribute, coordinating requests between the
// elements matching the expression. Strategy is an htmx sync strategy such
// as "drop", "abort", "replace", or "queue first", appended verbatim:
//
//	hxsel.SyncAttrs(hxsel.Closest(form), "abort") // hx-sync="closest form:abort"
func SyncAttrs(e Expr, strategy string) templ.Attributes {
	v := e.String()
	if strategy != "" {
		v += ":" + strategy
	}
	return templ.Attributes{"hx-sync": v}
}

// MergeAttrs merges attribute maps left to right; later maps win on key
// collisions. Use to combine helper output with hand-written attributes.
func MergeAttrs(attrs ...templ.Attributes) templ.Attributes {
	merged := templ.Attributes{}
	for _, a := range attrs {
		for k, v := range a {
			merged[k] = v
		}
	}
	return merged
}
