package codec

// Rect is a width/height shape with an area computation.
//
// It doubles as the reference implementation of the codec interfaces: a Rect
// decoded from its textual form is an ordinary Rect, so Area works on it
// immediately.
type Rect struct {
	Width  float64
	Height float64
}

// NewRect constructs a rectangle with the given dimensions.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// CodecEncode exports the rectangle's fields as a plain map.
func (r Rect) CodecEncode() map[string]any {
	return map[string]any{
		"width":  r.Width,
		"height": r.Height,
	}
}

// CodecDecode copies recognized fields from a decoded map.
func (r *Rect) CodecDecode(m map[string]any) error {
	if v, ok := toFloat(m["width"]); ok {
		r.Width = v
	}
	if v, ok := toFloat(m["height"]); ok {
		r.Height = v
	}
	return nil
}

// toFloat normalizes the numeric types msgpack may produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}
