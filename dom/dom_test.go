package dom

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const doc = `<html><body>
<div class="slide first">
  <div class="top-bar" style="height: 8px"></div>
  <p>one <strong>two</strong></p>
  <table><tr><td>a</td><td>b</td></tr></table>
</div>
<div class="slide">second</div>
</body></html>`

func TestHelpers(t *testing.T) {
	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	slides := ByClass(root, "slide")
	if len(slides) != 2 {
		t.Fatalf("ByClass(slide) = %d, want 2", len(slides))
	}

	first := slides[0]
	if got := Classes(first); !cmp.Equal(got, []string{"slide", "first"}) {
		t.Errorf("Classes() = %v", got)
	}
	if !HasClass(first, "first") || HasClass(first, "second") {
		t.Error("HasClass() mismatch")
	}

	bar := FirstByClass(first, "top-bar")
	if bar == nil {
		t.Fatal("FirstByClass(top-bar) = nil")
	}
	if got := Style(bar); got != "height: 8px" {
		t.Errorf("Style() = %q", got)
	}

	p := FirstByTag(first, "p")
	if got := Text(p); got != "one two" {
		t.Errorf("Text(p) = %q, want %q", got, "one two")
	}

	tds := ByTag(first, "td")
	if len(tds) != 2 {
		t.Fatalf("ByTag(td) = %d, want 2", len(tds))
	}

	// Children returns element children only, excluding text nodes
	tr := FirstByTag(first, "tr")
	if got := len(Children(tr)); got != 2 {
		t.Errorf("Children(tr) = %d, want 2", got)
	}
}
