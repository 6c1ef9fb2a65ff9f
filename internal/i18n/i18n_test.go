package i18n

import (
	"testing"
	"testing/fstest"
)

func TestDefault_LoadsEmbeddedLocales(t *testing.T) {
	c := Default()
	if !c.Has("pt") || !c.Has("en") {
		t.Fatalf("expected pt and en locales")
	}
	if got := c.Text("en", "timeline.examDay"); got != "Exam Day" {
		t.Fatalf("expected Exam Day, got %q", got)
	}
	if got := c.Text("pt", "ics.filename"); got != "preparacao-colonoscopia.ics" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestText_FallbacksToDefaultLanguageThenKey(t *testing.T) {
	fsys := fstest.MapFS{
		"l/pt.json": {Data: []byte(`{"a":{"b":"olá","only":"só pt"}}`)},
		"l/en.json": {Data: []byte(`{"a":{"b":"hello"}}`)},
	}
	c, err := Load(fsys, "l", "pt")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := c.Text("en", "a.b"); got != "hello" {
		t.Fatalf("expected hello, got %q", got)
	}
	if got := c.Text("en", "a.only"); got != "só pt" {
		t.Fatalf("expected fallback text, got %q", got)
	}
	if got := c.Text("fr", "a.b"); got != "olá" {
		t.Fatalf("expected fallback for unknown language, got %q", got)
	}
	if got := c.Text("en", "a.missing"); got != "a.missing" {
		t.Fatalf("expected key echoed back, got %q", got)
	}
	// "a" es un objeto, no un texto
	if got := c.Text("en", "a"); got != "a" {
		t.Fatalf("expected key for non-string node, got %q", got)
	}
}

func TestTextN(t *testing.T) {
	if got := Default().TextN("en", "timeline.daysBefore", 3); got != "3 days before exam" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestLoad_RequiresFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"l/en.json": {Data: []byte(`{}`)},
	}
	if _, err := Load(fsys, "l", "pt"); err == nil {
		t.Fatalf("expected error without fallback locale")
	}
}
