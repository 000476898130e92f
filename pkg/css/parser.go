package css

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/multierr"
)

// Parse parses stylesheet text into an ordered rule list. A malformed rule
// is skipped and parsing resumes at the next rule; the skipped rules are
// reported through the combined error alongside the usable stylesheet.
func Parse(source string) (*Stylesheet, error) {
	p := &parser{input: stripComments(source)}
	sheet := &Stylesheet{}

	var errs error
	for {
		p.consumeWhitespace()
		if p.eof() {
			break
		}
		start := p.pos
		rule, err := p.parseRule()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule at offset %d: %w", start, err))
			p.skipPastRule()
			continue
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet, errs
}

// stripComments removes /* ... */ comments. An unterminated comment runs
// to the end of input.
func stripComments(s string) string {
	var sb strings.Builder
	for {
		open := strings.Index(s, "/*")
		if open == -1 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:open])
		rest := s[open+2:]
		end := strings.Index(rest, "*/")
		if end == -1 {
			return sb.String()
		}
		s = rest[end+2:]
	}
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseRule() (Rule, error) {
	selectors, err := p.parseSelectors()
	if err != nil {
		return Rule{}, err
	}
	declarations, err := p.parseDeclarations()
	if err != nil {
		return Rule{}, err
	}
	return Rule{Selectors: selectors, Declarations: declarations}, nil
}

// parseSelectors parses a comma-separated selector list up to the opening
// brace and sorts it by descending specificity, so the rule's best-matching
// selector is found first.
func (p *parser) parseSelectors() ([]Selector, error) {
	var selectors []Selector
	for {
		sel, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
		p.consumeWhitespace()
		if p.eof() {
			return nil, fmt.Errorf("unexpected end of input in selector list")
		}
		switch c := p.nextChar(); c {
		case ',':
			p.consumeChar()
			p.consumeWhitespace()
		case '{':
			p.consumeChar()
			sort.SliceStable(selectors, func(i, j int) bool {
				return selectors[j].Specificity().Less(selectors[i].Specificity())
			})
			return selectors, nil
		default:
			return nil, fmt.Errorf("unexpected character %q in selector list", c)
		}
	}
}

func (p *parser) parseSimpleSelector() (Selector, error) {
	var sel Selector
	matched := false
	for !p.eof() {
		switch c := p.nextChar(); {
		case c == '#':
			p.consumeChar()
			id := p.parseIdentifier()
			if id == "" {
				return sel, fmt.Errorf("empty id selector")
			}
			sel.ID = id
			matched = true
		case c == '.':
			p.consumeChar()
			class := p.parseIdentifier()
			if class == "" {
				return sel, fmt.Errorf("empty class selector")
			}
			sel.Classes = append(sel.Classes, class)
			matched = true
		case c == '*':
			// universal selector constrains nothing
			p.consumeChar()
			matched = true
		case isIdentChar(c):
			sel.TagName = p.parseIdentifier()
			matched = true
		default:
			if !matched {
				return sel, fmt.Errorf("unexpected character %q in selector", c)
			}
			return sel, nil
		}
	}
	return sel, nil
}

func (p *parser) parseDeclarations() ([]Declaration, error) {
	var declarations []Declaration
	for {
		p.consumeWhitespace()
		if p.eof() {
			return nil, fmt.Errorf("unclosed declaration block")
		}
		if p.nextChar() == '}' {
			p.consumeChar()
			return declarations, nil
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, decl)
	}
}

func (p *parser) parseDeclaration() (Declaration, error) {
	name := p.parseIdentifier()
	if name == "" {
		return Declaration{}, fmt.Errorf("missing property name")
	}
	p.consumeWhitespace()
	if err := p.expect(':'); err != nil {
		return Declaration{}, fmt.Errorf("property %q: %w", name, err)
	}
	p.consumeWhitespace()
	value, err := p.parseValue()
	if err != nil {
		return Declaration{}, fmt.Errorf("property %q: %w", name, err)
	}
	p.consumeWhitespace()
	if err := p.expect(';'); err != nil {
		return Declaration{}, fmt.Errorf("property %q: %w", name, err)
	}
	return Declaration{Name: name, Value: value}, nil
}

func (p *parser) parseValue() (Value, error) {
	if p.eof() {
		return Value{}, fmt.Errorf("missing value")
	}
	switch c := p.nextChar(); {
	case c >= '0' && c <= '9', c == '.':
		return p.parseLength()
	case c == '#':
		return p.parseColor()
	default:
		kw := p.parseIdentifier()
		if kw == "" {
			return Value{}, fmt.Errorf("unexpected character %q in value", c)
		}
		return Keyword(kw), nil
	}
}

func (p *parser) parseLength() (Value, error) {
	num := p.consumeWhile(func(c byte) bool {
		return (c >= '0' && c <= '9') || c == '.'
	})
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Value{}, fmt.Errorf("bad number %q", num)
	}
	unit := p.parseIdentifier()
	if !strings.EqualFold(unit, "px") {
		return Value{}, fmt.Errorf("unrecognized unit %q", unit)
	}
	return Length(n, Px), nil
}

func (p *parser) parseColor() (Value, error) {
	p.consumeChar() // '#'
	hex := p.consumeWhile(func(c byte) bool {
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	})
	if len(hex) != 6 {
		return Value{}, fmt.Errorf("bad color #%s", hex)
	}
	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return ColorOf(Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}), nil
}

func (p *parser) parseIdentifier() string {
	return p.consumeWhile(isIdentChar)
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' ||
		unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}

func (p *parser) expect(c byte) error {
	if p.eof() || p.nextChar() != c {
		return fmt.Errorf("expected %q", c)
	}
	p.consumeChar()
	return nil
}

// skipPastRule advances past the end of the current (malformed) rule: the
// next '}', or end of input.
func (p *parser) skipPastRule() {
	for !p.eof() {
		if p.consumeChar() == '}' {
			return
		}
	}
}

func (p *parser) consumeWhile(test func(byte) bool) string {
	start := p.pos
	for !p.eof() && test(p.nextChar()) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) consumeWhitespace() {
	p.consumeWhile(func(c byte) bool {
		return c == ' ' || c == '\t' || c == '\n' || c == '\r'
	})
}

func (p *parser) consumeChar() byte {
	c := p.input[p.pos]
	p.pos++
	return c
}

func (p *parser) nextChar() byte {
	return p.input[p.pos]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}
