package css

import (
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Decl holds the declarations of a single rule or inline style attribute:
// property name → raw value string. Values keep their original spelling;
// interpretation (colors, lengths) is left to the caller.
type Decl map[string]string

// Get returns the raw value for prop. The second return value reports
// whether the property is declared at all, so callers can tell an absent
// property from an empty one and apply their own fallback.
func (d Decl) Get(prop string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d[prop]
	return v, ok
}

// Has reports whether prop is declared.
func (d Decl) Has(prop string) bool {
	_, ok := d.Get(prop)
	return ok
}

// Val returns the raw value for prop, or "" when absent.
func (d Decl) Val(prop string) string {
	v, _ := d.Get(prop)
	return v
}

// Background returns the background color value, checking both the
// "background" shorthand and "background-color".
func (d Decl) Background() string {
	if v, ok := d.Get("background"); ok && v != "" {
		return v
	}
	return d.Val("background-color")
}

// Bold reports whether the declared font-weight means bold. An absent
// font-weight returns def.
func (d Decl) Bold(def bool) bool {
	v, ok := d.Get("font-weight")
	if !ok || v == "" {
		return def
	}
	switch v {
	case "normal", "400", "300", "200", "100":
		return false
	}
	return true
}

// merge copies src over d, later properties winning.
func (d Decl) merge(src Decl) {
	for k, v := range src {
		d[k] = v
	}
}

// Stylesheet is the selector → declarations mapping parsed from the
// document's <style> blocks. It is built once per document and read-only
// afterwards, so it is safe to share across concurrent slide rendering.
type Stylesheet struct {
	rules map[string]Decl
}

// Parse parses raw style-block text into a Stylesheet. Grouped selectors
// ("a, b { ... }") produce one entry per selector. Unparsable declarations
// are skipped, never fatal. At-rules are ignored.
func Parse(raw string) *Stylesheet {
	s := &Stylesheet{rules: map[string]Decl{}}
	input := parse.NewInput(strings.NewReader(raw))
	p := css.NewParser(input, false)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return s
		case css.BeginAtRuleGrammar:
			skipAtRule(p)
		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selectors := splitSelectors(data, p.Values())
			props := parseDeclarations(p)
			for _, sel := range selectors {
				d, ok := s.rules[sel]
				if !ok {
					d = Decl{}
					s.rules[sel] = d
				}
				d.merge(props)
			}
		}
	}
}

// ParseInline parses the value of a style attribute into declarations.
func ParseInline(style string) Decl {
	if strings.TrimSpace(style) == "" {
		return nil
	}
	d := Decl{}
	input := parse.NewInput(strings.NewReader(style))
	p := css.NewParser(input, true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if len(d) == 0 {
				return nil
			}
			return d
		case css.DeclarationGrammar:
			d[strings.ToLower(string(data))] = joinTokens(p.Values())
		}
	}
}

// Rule returns the merged declarations for the given selectors, later
// selectors winning per property. Unknown selectors contribute nothing.
func (s *Stylesheet) Rule(selectors ...string) Decl {
	merged := Decl{}
	for _, sel := range selectors {
		if d, ok := s.rules[normalizeSelector(sel)]; ok {
			merged.merge(d)
		}
	}
	return merged
}

// Resolve returns the effective style of an element: tag defaults, then the
// element's classes in listed order (a later class overrides an earlier
// one), then the inline style attribute on top.
func (s *Stylesheet) Resolve(tag string, classes []string, inline string) Decl {
	merged := Decl{}
	if tag != "" {
		merged.merge(s.Rule(tag))
	}
	for _, c := range classes {
		if c == "" {
			continue
		}
		merged.merge(s.Rule("." + c))
	}
	merged.merge(ParseInline(inline))
	return merged
}

// Before returns the declarations of the ::before pseudo-element of a
// class selector, used to resolve synthetic bullet glyphs. Both the
// double- and single-colon spellings are honored.
func (s *Stylesheet) Before(class string) Decl {
	return s.Rule("."+class+"::before", "."+class+":before")
}

// Len returns the number of rules in the stylesheet.
func (s *Stylesheet) Len() int {
	return len(s.rules)
}

// Content decodes a CSS content property value into the literal glyph
// string: surrounding quotes are stripped and backslash codepoint escapes
// like "\25AA" are decoded.
func Content(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.Trim(v, `"'`)
	if rest, ok := strings.CutPrefix(v, `\`); ok && len(rest) <= 6 {
		if cp, err := strconv.ParseInt(strings.TrimSpace(rest), 16, 32); err == nil {
			return string(rune(cp))
		}
	}
	return v
}

func parseDeclarations(p *css.Parser) Decl {
	props := Decl{}
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props
		case css.DeclarationGrammar:
			props[strings.ToLower(string(data))] = joinTokens(p.Values())
		}
	}
}

// joinTokens rebuilds a raw value string from declaration tokens,
// collapsing runs of whitespace to a single space. The tokenizer drops
// the whitespace that follows a list comma, so commas restore it.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			space = sb.Len() > 0
			continue
		case css.CommaToken:
			sb.WriteByte(',')
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// splitSelectors rebuilds the selector prelude and splits grouped
// selectors on commas.
func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	var selectors []string
	for _, s := range strings.Split(sb.String(), ",") {
		if s = normalizeSelector(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// normalizeSelector trims and collapses inner whitespace so descendant
// selectors compare equal regardless of source formatting.
func normalizeSelector(sel string) string {
	return strings.Join(strings.Fields(sel), " ")
}

func skipAtRule(p *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
