package css

import "fmt"

// ValueKind discriminates the Value variant.
type ValueKind int

const (
	KeywordValue ValueKind = iota
	LengthValue
	ColorValue
)

// Unit is a length unit. Only pixels are supported.
type Unit int

const (
	Px Unit = iota
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Value is a declaration value: a keyword, a length, or a color.
// Exactly one of the payload fields is meaningful, selected by Kind.
type Value struct {
	Kind    ValueKind
	Keyword string
	Length  float64
	Unit    Unit
	Color   Color
}

// Keyword returns a keyword value.
func Keyword(s string) Value {
	return Value{Kind: KeywordValue, Keyword: s}
}

// Length returns a length value.
func Length(n float64, u Unit) Value {
	return Value{Kind: LengthValue, Length: n, Unit: u}
}

// ColorOf returns a color value.
func ColorOf(c Color) Value {
	return Value{Kind: ColorValue, Color: c}
}

// ToPx returns the value in pixels. Non-length values contribute 0.
func (v Value) ToPx() float64 {
	if v.Kind == LengthValue && v.Unit == Px {
		return v.Length
	}
	return 0
}

// IsKeyword reports whether the value is the given keyword.
func (v Value) IsKeyword(s string) bool {
	return v.Kind == KeywordValue && v.Keyword == s
}

func (v Value) String() string {
	switch v.Kind {
	case KeywordValue:
		return v.Keyword
	case LengthValue:
		return fmt.Sprintf("%gpx", v.Length)
	case ColorValue:
		c := v.Color
		return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
	}
	return ""
}

// Specificity ranks competing selectors: id matches, then class matches,
// then tag matches. It is a ranking key only and is never stored on a rule.
type Specificity struct {
	ID, Class, Tag int
}

// Less reports whether s ranks strictly below o.
func (s Specificity) Less(o Specificity) bool {
	if s.ID != o.ID {
		return s.ID < o.ID
	}
	if s.Class != o.Class {
		return s.Class < o.Class
	}
	return s.Tag < o.Tag
}
