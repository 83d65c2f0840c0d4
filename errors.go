package hxsel

import "errors"

// Sentinel errors for selector construction.
//
// A builder latches the first violation it encounters; retrieve it with
// Selector.Err and branch with errors.Is or the helpers below.
var (
	// ErrDuplicatePart is latched when a single-occurrence part kind
	// (element, id, pseudo-element) is added a second time.
	ErrDuplicatePart = errors.New("hxsel: element, id and pseudo-element should not occur more than one time inside the selector")

	// ErrPartOrder is latched when a part is added after a later-ordered
	// part is already present.
	ErrPartOrder = errors.New("hxsel: selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// IsDuplicate checks if err is a duplicate-part error.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicatePart)
}

// IsOrderViolation checks if err is a part-ordering error.
func IsOrderViolation(err error) bool {
	return errors.Is(err, ErrPartOrder)
}
