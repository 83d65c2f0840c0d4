package hxsel

import "strings"

// Selector is a fluent builder for CSS compound selectors.
//
// A Selector accumulates parts in call order, validating each addition
// against the CSS ordering and cardinality rules described on PartKind. The
// accumulated text is rendered with String, which never validates and may be
// called at any point, any number of times.
//
// Validation failures latch: the first violating call records its error,
// leaves the text and state exactly as they were, and turns subsequent
// part-addition calls into no-ops. Retrieve the latched error with Err.
//
// A Selector is a plain mutable value owned by the caller holding it. It is
// not safe for concurrent use; construction is expected to be a synchronous
// chain on a single goroutine.
type Selector struct {
	text    strings.Builder
	present uint8 // bitmask of kinds added, indexed by PartKind
	highest PartKind
	seen    bool // false until the first part is added
	err     error
}

// New creates an empty selector builder.
//
// Most callers start from one of the part entry points (Element, ID, Class,
// Attr, PseudoClass, PseudoElement) instead, which construct the builder and
// apply the first part in one call.
func New() *Selector {
	return &Selector{}
}

// Element starts a selector with an element (tag) part, rendered as value.
func Element(value string) *Selector {
	return New().Element(value)
}

// ID starts a selector with an id part, rendered as #value.
func ID(value string) *Selector {
	return New().ID(value)
}

// Class starts a selector with a class part, rendered as .value.
func Class(value string) *Selector {
	return New().Class(value)
}

// Attr starts a selector with an attribute part, rendered as [value].
//
// The value is embedded verbatim, so it may carry an operator and quoted
// operand: Attr(`href$=".png"`) renders [href$=".png"].
func Attr(value string) *Selector {
	return New().Attr(value)
}

// PseudoClass starts a selector with a pseudo-class part, rendered as :value.
func PseudoClass(value string) *Selector {
	return New().PseudoClass(value)
}

// PseudoElement starts a selector with a pseudo-element part, rendered
// as ::value.
func PseudoElement(value string) *Selector {
	return New().PseudoElement(value)
}

// Combine constructs a new selector whose text is the two operands joined by
// the combinator, with a single space on each side:
//
//	Combine(Element("div"), Child, Class("item")).String() // "div > .item"
//
// Neither operand is mutated; both may continue to be used (or combined
// again) afterwards.
func Combine(left *Selector, combinator string, right *Selector) *Selector {
	return New().Combine(left, combinator, right)
}

// Element adds an element (tag) part. It must be the first part added:
// a second element latches ErrDuplicatePart, and an element after any other
// part latches ErrPartOrder.
func (s *Selector) Element(value string) *Selector {
	return s.add(KindElement, value)
}

// ID adds an id part, rendered as #value. At most one id is allowed, and it
// must precede class, attribute, pseudo-class, and pseudo-element parts.
func (s *Selector) ID(value string) *Selector {
	return s.add(KindID, value)
}

// Class adds a class part, rendered as .value. Classes may repeat but must
// precede attribute, pseudo-class, and pseudo-element parts.
func (s *Selector) Class(value string) *Selector {
	return s.add(KindClass, value)
}

// Attr adds an attribute part, rendered as [value]. Attributes may repeat
// but must precede pseudo-class and pseudo-element parts.
func (s *Selector) Attr(value string) *Selector {
	return s.add(KindAttribute, value)
}

// PseudoClass adds a pseudo-class part, rendered as :value. Pseudo-classes
// may repeat but must precede the pseudo-element part.
func (s *Selector) PseudoClass(value string) *Selector {
	return s.add(KindPseudoClass, value)
}

// PseudoElement adds a pseudo-element part, rendered as ::value. At most one
// pseudo-element is allowed; it is the terminal part kind.
func (s *Selector) PseudoElement(value string) *Selector {
	return s.add(KindPseudoElement, value)
}

// add runs the validation state machine and, on success, appends the part's
// rendering. On failure the builder is left exactly as it was, with the
// error latched.
func (s *Selector) add(kind PartKind, value string) *Selector {
	if s.err != nil {
		return s
	}
	if !kind.Repeatable() && s.present&(1<<kind) != 0 {
		s.err = ErrDuplicatePart
		return s
	}
	if s.seen && kind < s.highest {
		s.err = ErrPartOrder
		return s
	}

	s.present |= 1 << kind
	if !s.seen || kind > s.highest {
		s.highest = kind
	}
	s.seen = true
	s.text.WriteString(kind.render(value))
	return s
}

// Combine overwrites the receiver with the combination of two selectors:
// left.String() + " " + combinator + " " + right.String().
//
// Any text and validation state previously accumulated on the receiver,
// including a latched error, is discarded rather than merged. The combinator
// is embedded verbatim - it is not validated, so a combinator of " " yields
// three consecutive spaces between the operands (the two mandatory padding
// spaces plus the combinator itself).
//
// The operands are only read, via String; they are not mutated and remain
// usable afterwards. Either operand may itself be a combined selector,
// nesting to any depth.
func (s *Selector) Combine(left *Selector, combinator string, right *Selector) *Selector {
	// Read both operands before resetting so s.Combine(s, c, s) behaves.
	leftText := left.String()
	rightText := right.String()

	s.text.Reset()
	s.present = 0
	s.highest = 0
	s.seen = false
	s.err = nil

	s.text.WriteString(leftText)
	s.text.WriteString(" ")
	s.text.WriteString(combinator)
	s.text.WriteString(" ")
	s.text.WriteString(rightText)
	return s
}

// String returns the accumulated selector text verbatim.
//
// String is pure: it performs no validation, has no effect on builder state,
// and returns an identical string on repeated calls. A builder with no parts
// added returns the empty string.
func (s *Selector) String() string {
	return s.text.String()
}

// Err returns the first validation error latched by a part-addition call,
// or nil if every addition so far was valid.
//
// Branch on the error with IsDuplicate, IsOrderViolation, or errors.Is
// against ErrDuplicatePart and ErrPartOrder.
func (s *Selector) Err() error {
	return s.err
}

// Must returns the selector text, panicking if a validation error latched.
//
// Use in template code where selectors are built from constants and a
// violation is a programming error:
//
//	var card = hxsel.Must(hxsel.Element("div").Class("card"))
func Must(s *Selector) string {
	if err := s.Err(); err != nil {
		panic(err)
	}
	return s.String()
}
