package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	raw := `
body { font-family: -apple-system, Arial; }
.title, .subtitle { color: #1A5276; }
.title { font-size: 42px; }
@media print { .title { font-size: 12px; } }
.bullet-item::before { content: "\25AA"; color: #E74C3C; }
.workload th { background: #1A5276; color: white; }
`
	s := Parse(raw)

	tests := []struct {
		selector string
		prop     string
		want     string
	}{
		{"body", "font-family", "-apple-system, Arial"},
		{".title", "color", "#1A5276"},
		{".subtitle", "color", "#1A5276"},
		{".title", "font-size", "42px"},
		{".workload th", "background", "#1A5276"},
	}
	for _, tt := range tests {
		t.Run(tt.selector+" "+tt.prop, func(t *testing.T) {
			got := s.Rule(tt.selector).Val(tt.prop)
			if got != tt.want {
				t.Errorf("Rule(%q).Val(%q) = %q, want %q", tt.selector, tt.prop, got, tt.want)
			}
		})
	}

	// at-rule contents must not leak into normal rules
	if got := s.Rule(".title").Val("font-size"); got == "12px" {
		t.Error("at-rule declaration leaked into .title")
	}
}

func TestResolvePrecedence(t *testing.T) {
	s := Parse(`
div { color: black; font-size: 10px; }
.a { color: #111111; }
.b { color: #222222; }
`)
	tests := []struct {
		name    string
		classes []string
		inline  string
		want    string
	}{
		{"tag only", nil, "", "black"},
		{"class over tag", []string{"a"}, "", "#111111"},
		{"later class wins", []string{"a", "b"}, "", "#222222"},
		{"inline over class", []string{"a", "b"}, "color: #333333", "#333333"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Resolve("div", tt.classes, tt.inline).Val("color")
			if got != tt.want {
				t.Errorf("Resolve() color = %q, want %q", got, tt.want)
			}
		})
	}
	// untouched properties survive overrides
	if got := s.Resolve("div", []string{"a"}, "color: red").Val("font-size"); got != "10px" {
		t.Errorf("font-size = %q, want 10px", got)
	}
}

func TestParseInline(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  Decl
	}{
		{
			"positioned block",
			"position: absolute; top: 100px; left: 30px",
			Decl{"position": "absolute", "top": "100px", "left": "30px"},
		},
		{
			"whitespace in values",
			"border: 1px  solid   #ccc",
			Decl{"border": "1px solid #ccc"},
		},
		{
			"comma list keeps separation",
			`font-family: "Segoe UI",Arial`,
			Decl{"font-family": `"Segoe UI", Arial`},
		},
		{"empty", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInline(tt.style)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseInline() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBefore(t *testing.T) {
	s := Parse(`
.bullet-item::before { content: "\25AA"; color: #E74C3C; }
.legacy:before { content: "-"; }
`)
	if got := Content(s.Before("bullet-item").Val("content")); got != "▪" {
		t.Errorf("bullet-item glyph = %q, want ▪", got)
	}
	if got := Content(s.Before("legacy").Val("content")); got != "-" {
		t.Errorf("legacy glyph = %q, want -", got)
	}
	if d := s.Before("missing"); len(d) != 0 {
		t.Errorf("Before(missing) = %v, want empty", d)
	}
}

func TestContent(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"\25AA"`, "▪"},
		{`"\2022"`, "•"},
		{`"●"`, "●"},
		{`'-'`, "-"},
		{``, ""},
	}
	for _, tt := range tests {
		if got := Content(tt.raw); got != tt.want {
			t.Errorf("Content(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestBold(t *testing.T) {
	tests := []struct {
		name string
		d    Decl
		def  bool
		want bool
	}{
		{"bold keyword", Decl{"font-weight": "bold"}, false, true},
		{"numeric bold", Decl{"font-weight": "700"}, false, true},
		{"normal", Decl{"font-weight": "normal"}, true, false},
		{"numeric normal", Decl{"font-weight": "400"}, true, false},
		{"absent keeps default", Decl{}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Bold(tt.def); got != tt.want {
				t.Errorf("Bold(%v) = %v, want %v", tt.def, got, tt.want)
			}
		})
	}
}
