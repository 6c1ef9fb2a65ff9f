package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DSN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TimeZone != "Europe/Lisbon" {
		t.Errorf("expected default timezone, got %q", cfg.TimeZone)
	}
	if cfg.DefaultExamTime != "08:30" {
		t.Errorf("expected default exam time 08:30, got %q", cfg.DefaultExamTime)
	}
	if cfg.ContentTimeout != 10*time.Second {
		t.Errorf("expected 10s content timeout, got %s", cfg.ContentTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/prep")
	t.Setenv("DEFAULT_LANGUAGE", "en")
	t.Setenv("CONTENT_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DBDSN != "postgres://u:p@localhost:5432/prep" {
		t.Errorf("expected DB_DSN from env, got %q", cfg.DBDSN)
	}
	if cfg.Language() != "en" {
		t.Errorf("expected en, got %q", cfg.Language())
	}
	if cfg.ContentTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %s", cfg.ContentTimeout)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		DefaultLanguage: "pt",
		DefaultExamTime: "08:30",
		TimeZone:        "Europe/Lisbon",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(c *Config){
		"language": func(c *Config) { c.DefaultLanguage = "fr" },
		"clock":    func(c *Config) { c.DefaultExamTime = "25:00" },
		"timezone": func(c *Config) { c.TimeZone = "Mars/Olympus" },
		"content":  func(c *Config) { c.ContentBaseURL = "ftp://content" },
	}
	for name, mutate := range cases {
		c := valid
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestParser_UsesConfiguredClock(t *testing.T) {
	c := Config{TimeZone: "UTC", DefaultExamTime: "10:15"}
	p, err := c.Parser()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := p.Combine("2024-06-10", "")
	if !ok {
		t.Fatal("expected valid instant")
	}
	want := time.Date(2024, 6, 10, 10, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCalendarZone(t *testing.T) {
	cases := map[string]string{
		"":                "Europe/Lisbon",
		"Local":           "Europe/Lisbon",
		"Not/AZone":       "Europe/Lisbon",
		"Atlantic/Azores": "Atlantic/Azores",
		" UTC ":           "UTC",
	}
	for in, want := range cases {
		cfg := &Config{TimeZone: in}
		if got := cfg.CalendarZone(); got != want {
			t.Errorf("CalendarZone(%q) = %q, want %q", in, got, want)
		}
	}
}
