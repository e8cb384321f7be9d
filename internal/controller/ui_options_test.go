package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := newStartConfig(nil)
	if cfg.mode != ModeSearch || cfg.format != FormatText {
		t.Fatalf("default config = %+v, want search mode and text format", cfg)
	}

	WithListMode()(&cfg)
	if cfg.mode != ModeList {
		t.Fatalf("WithListMode() mode = %v, want %v", cfg.mode, ModeList)
	}

	WithViewMode()(&cfg)
	if cfg.mode != ModeView {
		t.Fatalf("WithViewMode() mode = %v, want %v", cfg.mode, ModeView)
	}

	WithSearchMode()(&cfg)
	if cfg.mode != ModeSearch {
		t.Fatalf("WithSearchMode() mode = %v, want %v", cfg.mode, ModeSearch)
	}

	WithFormat(FormatLaTeX)(&cfg)
	if cfg.format != FormatLaTeX {
		t.Fatalf("WithFormat() format = %v, want %v", cfg.format, FormatLaTeX)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "text": FormatText, "latex": FormatLaTeX, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseFormat("html"); err == nil {
		t.Fatalf("ParseFormat(html) expected error")
	}
}
