// Package style matches stylesheet rules against document nodes and applies
// the cascade, producing a styled tree that mirrors the document tree.
package style

import (
	"sort"

	"vellum/pkg/css"
	"vellum/pkg/dom"
)

// PropertyMap holds a node's resolved property values.
type PropertyMap map[string]css.Value

// StyledNode pairs a document node with its resolved properties. Its
// children mirror the document node's children exactly: same shape, same
// order. The styled tree is built once per render pass and discarded after
// layout.
type StyledNode struct {
	Node      *dom.Node
	Specified PropertyMap
	Children  []*StyledNode
}

// Display is the layout classification of a styled node.
type Display int

const (
	DisplayInline Display = iota
	DisplayBlock
	DisplayNone
)

// Resolve builds the styled tree for root against the stylesheet. Element
// nodes get the cascaded property map; text nodes get an empty one.
func Resolve(root *dom.Node, sheet *css.Stylesheet) *StyledNode {
	sn := &StyledNode{
		Node:      root,
		Specified: PropertyMap{},
	}
	if root.Type == dom.ElementNode {
		sn.Specified = specifiedValues(root, sheet)
	}
	sn.Children = make([]*StyledNode, len(root.Children))
	for i, child := range root.Children {
		sn.Children[i] = Resolve(child, sheet)
	}
	return sn
}

// Value returns the resolved value for the named property.
func (sn *StyledNode) Value(name string) (css.Value, bool) {
	v, ok := sn.Specified[name]
	return v, ok
}

// Lookup resolves a property through the fallback chain: the explicit
// per-side property, then the shorthand, then the default. It always
// produces a usable value; a missing property is not an error.
func (sn *StyledNode) Lookup(name, shorthand string, def css.Value) css.Value {
	if v, ok := sn.Value(name); ok {
		return v
	}
	if v, ok := sn.Value(shorthand); ok {
		return v
	}
	return def
}

// Color returns the named property as a color, if it resolves to one.
func (sn *StyledNode) Color(name string) (css.Color, bool) {
	if v, ok := sn.Value(name); ok && v.Kind == css.ColorValue {
		return v.Color, true
	}
	return css.Color{}, false
}

// Display classifies the node for layout. Anything other than an explicit
// "block" or "none" keyword is inline.
func (sn *StyledNode) Display() Display {
	if v, ok := sn.Value("display"); ok && v.Kind == css.KeywordValue {
		switch v.Keyword {
		case "block":
			return DisplayBlock
		case "none":
			return DisplayNone
		}
	}
	return DisplayInline
}

// IsText reports whether the underlying document node is a text leaf.
func (sn *StyledNode) IsText() bool {
	return sn.Node.Type == dom.TextNode
}

// matchedRule carries the specificity of the rule's best-matching selector.
type matchedRule struct {
	specificity css.Specificity
	rule        *css.Rule
}

// specifiedValues runs the cascade for one element: collect the rules with
// at least one matching selector, order them by ascending specificity with
// declaration order breaking ties, and apply declarations in that order so
// the last write wins.
func specifiedValues(elem *dom.Node, sheet *css.Stylesheet) PropertyMap {
	values := PropertyMap{}
	matches := matchingRules(elem, sheet)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].specificity.Less(matches[j].specificity)
	})
	for _, m := range matches {
		for _, decl := range m.rule.Declarations {
			values[decl.Name] = decl.Value
		}
	}
	return values
}

func matchingRules(elem *dom.Node, sheet *css.Stylesheet) []matchedRule {
	var matches []matchedRule
	for i := range sheet.Rules {
		rule := &sheet.Rules[i]
		if m, ok := matchRule(elem, rule); ok {
			matches = append(matches, m)
		}
	}
	return matches
}

// matchRule finds the rule's best-matching selector. Selectors are stored
// in descending specificity order, so the first hit ranks the whole rule.
// A matched rule contributes all of its declarations.
func matchRule(elem *dom.Node, rule *css.Rule) (matchedRule, bool) {
	for _, sel := range rule.Selectors {
		if Matches(elem, sel) {
			return matchedRule{specificity: sel.Specificity(), rule: rule}, true
		}
	}
	return matchedRule{}, false
}

// Matches reports whether the element satisfies every constraint the
// selector specifies: exact tag equality, exact id equality, and presence
// of every selector class among the element's class tokens.
func Matches(elem *dom.Node, sel css.Selector) bool {
	if elem.Type != dom.ElementNode {
		return false
	}
	if sel.TagName != "" && sel.TagName != elem.TagName {
		return false
	}
	if sel.ID != "" {
		if id, ok := elem.ID(); !ok || id != sel.ID {
			return false
		}
	}
	for _, class := range sel.Classes {
		if !elem.HasClass(class) {
			return false
		}
	}
	return true
}
