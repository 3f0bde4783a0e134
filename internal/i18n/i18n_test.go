package i18n

import (
	"os"
	"testing"

	"golang.org/x/text/language"
)

func TestMatchLanguage(t *testing.T) {
	if tag := MatchLanguage("sv-SE,sv;q=0.9"); tag != language.Swedish {
		t.Errorf("expected Swedish, got %v", tag)
	}
	if tag := MatchLanguage("fr-FR"); tag != language.English {
		t.Errorf("unsupported language should fall back to English, got %v", tag)
	}
}

func TestNewCLIPrinter(t *testing.T) {
	oldLCAll, oldLang := os.Getenv("LC_ALL"), os.Getenv("LANG")
	defer func() {
		os.Setenv("LC_ALL", oldLCAll)
		os.Setenv("LANG", oldLang)
	}()

	os.Setenv("LC_ALL", "")
	os.Setenv("LANG", "sv_SE.UTF-8")
	if p := NewCLIPrinter(); p == nil {
		t.Fatal("printer should not be nil")
	}

	os.Setenv("LANG", "garbage")
	if p := NewCLIPrinter(); p == nil {
		t.Fatal("printer should fall back, not be nil")
	}

	os.Setenv("LANG", "")
	if p := NewCLIPrinter(); p == nil {
		t.Fatal("printer without locale env should not be nil")
	}
}
