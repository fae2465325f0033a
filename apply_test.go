package htmldeck

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestWritePPTX(t *testing.T) {
	deck := parseTestDeck(t)
	var buf bytes.Buffer
	if err := deck.WritePPTX(&buf); err != nil {
		t.Fatalf("WritePPTX() error = %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	for _, name := range []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
		"ppt/slides/slide1.xml",
	} {
		if _, err := zr.Open(name); err != nil {
			t.Errorf("missing part %s: %v", name, err)
		}
	}
}

func TestConvert(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := c.Convert(context.Background(), strings.NewReader(testDoc), &buf); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("Convert() wrote nothing")
	}
	if _, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len())); err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
}

func TestScale(t *testing.T) {
	s := NewScale(960, 10)
	if s != 9525 {
		t.Errorf("NewScale(960, 10) = %v, want 9525", s)
	}
	if got := s.EMU(30); got != 285750 {
		t.Errorf("EMU(30) = %d, want 285750", got)
	}
	if got := s.EMU(0); got != 0 {
		t.Errorf("EMU(0) = %d, want 0", got)
	}
}
