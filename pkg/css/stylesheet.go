package css

import "strings"

// Stylesheet is an ordered list of rules. Rule order is significant:
// the cascade breaks specificity ties in favor of later rules.
type Stylesheet struct {
	Rules []Rule
}

// Rule pairs a selector list with a declaration list. The selectors are
// kept sorted by descending specificity so that matching can stop at the
// first (best) hit.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Selector is a simple selector: an optional tag name, an optional id,
// and any number of class names. Empty fields are unconstrained, so the
// zero Selector is the universal selector.
type Selector struct {
	TagName string
	ID      string
	Classes []string
}

// Declaration is a single property assignment.
type Declaration struct {
	Name  string
	Value Value
}

// Specificity returns the selector's ranking key.
func (s Selector) Specificity() Specificity {
	spec := Specificity{Class: len(s.Classes)}
	if s.ID != "" {
		spec.ID = 1
	}
	if s.TagName != "" {
		spec.Tag = 1
	}
	return spec
}

func (s Selector) String() string {
	var sb strings.Builder
	if s.TagName != "" {
		sb.WriteString(s.TagName)
	}
	if s.ID != "" {
		sb.WriteByte('#')
		sb.WriteString(s.ID)
	}
	for _, c := range s.Classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	if sb.Len() == 0 {
		return "*"
	}
	return sb.String()
}

func (r Rule) String() string {
	var sb strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sel.String())
	}
	sb.WriteString(" {\n")
	for _, d := range r.Declarations {
		sb.WriteString("  ")
		sb.WriteString(d.Name)
		sb.WriteString(": ")
		sb.WriteString(d.Value.String())
		sb.WriteString(";\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (s *Stylesheet) String() string {
	var sb strings.Builder
	for i, r := range s.Rules {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}
