package hxsel

// PartKind identifies one kind of simple selector part.
//
// The declaration order is the fixed CSS ordering contract: parts must be
// added to a builder in non-decreasing PartKind order. Element, ID, and
// PseudoElement may occur at most once per compound selector; the remaining
// kinds may repeat.
type PartKind int

const (
	KindElement PartKind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

// Repeatable reports whether the kind may occur more than once in a
// compound selector.
func (k PartKind) Repeatable() bool {
	switch k {
	case KindClass, KindAttribute, KindPseudoClass:
		return true
	default:
		return false
	}
}

// render returns the CSS text for a part of this kind with the given value.
func (k PartKind) render(value string) string {
	switch k {
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// String returns the kind's name as used in error messages and debugging.
func (k PartKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}
