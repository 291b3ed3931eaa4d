package portfolio

import (
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestResolver(t *testing.T) *Resolver {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_content.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewResolver(s)
}

func TestResolveEnglish(t *testing.T) {
	r := setupTestResolver(t)

	if err := r.SaveBundle(SectionAbout, "en", &AboutContent{Name: "Test Name", Title: "Test Title"}); err != nil {
		t.Fatalf("SaveBundle failed: %v", err)
	}

	got, err := r.Resolve(SectionAbout, "en")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	about, ok := got.(*AboutContent)
	if !ok {
		t.Fatalf("Resolve returned %T, want *AboutContent", got)
	}
	if about.Name != "Test Name" {
		t.Errorf("Name = %q, want %q", about.Name, "Test Name")
	}
}

func TestResolveFallsBackToEnglish(t *testing.T) {
	r := setupTestResolver(t)

	if err := r.SaveBundle(SectionAbout, "en", &AboutContent{Name: "English"}); err != nil {
		t.Fatalf("SaveBundle failed: %v", err)
	}

	// No Arabic variant stored; English serves.
	got, err := r.Resolve(SectionAbout, "ar")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.(*AboutContent).Name != "English" {
		t.Errorf("fallback should serve the English bundle, got %+v", got)
	}
}

func TestResolvePrefersRequestedLanguage(t *testing.T) {
	r := setupTestResolver(t)

	if err := r.SaveBundle(SectionAbout, "en", &AboutContent{Name: "English"}); err != nil {
		t.Fatalf("SaveBundle failed: %v", err)
	}
	if err := r.SaveBundle(SectionAbout, "fr", &AboutContent{Name: "Français"}); err != nil {
		t.Fatalf("SaveBundle failed: %v", err)
	}

	got, err := r.Resolve(SectionAbout, "fr")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.(*AboutContent).Name != "Français" {
		t.Errorf("Resolve(fr) should serve the French variant, got %+v", got)
	}
}

func TestResolveUnknownLanguageDegrades(t *testing.T) {
	r := setupTestResolver(t)

	if err := r.SaveBundle(SectionAbout, "en", &AboutContent{Name: "English"}); err != nil {
		t.Fatalf("SaveBundle failed: %v", err)
	}

	// "xx" is not a supported code; the chain still ends at English.
	got, err := r.Resolve(SectionAbout, "xx")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.(*AboutContent).Name != "English" {
		t.Errorf("unknown language should degrade to English, got %+v", got)
	}
}

func TestResolveUnknownSection(t *testing.T) {
	r := setupTestResolver(t)

	_, err := r.Resolve("biography", "en")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown section, got %v", err)
	}
}

func TestResolveMissingEnglish(t *testing.T) {
	r := setupTestResolver(t)

	// Only a French variant exists; requesting German finds nothing.
	if err := r.SaveBundle(SectionEvents, "fr", &EventsContent{}); err != nil {
		t.Fatalf("SaveBundle failed: %v", err)
	}
	_, err := r.Resolve(SectionEvents, "de")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound without an English variant, got %v", err)
	}
}

func TestFallbackChain(t *testing.T) {
	tests := []struct {
		lang string
		want []string
	}{
		{"en", []string{"en"}},
		{"", []string{"en"}},
		{"fr", []string{"fr", "en"}},
		{"FR", []string{"fr", "en"}},
		{" zh ", []string{"zh", "en"}},
	}
	for _, tt := range tests {
		got := fallbackChain(tt.lang)
		if len(got) != len(tt.want) {
			t.Errorf("fallbackChain(%q) = %v, want %v", tt.lang, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("fallbackChain(%q)[%d] = %q, want %q", tt.lang, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSeedDefaultContent(t *testing.T) {
	r := setupTestResolver(t)

	if err := r.SeedDefaultContent(); err != nil {
		t.Fatalf("SeedDefaultContent failed: %v", err)
	}

	for _, section := range []string{SectionAbout, SectionLeadership, SectionAchievements, SectionEvents, SectionProjects} {
		if _, err := r.Resolve(section, "en"); err != nil {
			t.Errorf("section %s should be seeded: %v", section, err)
		}
	}

	// The French about overlay is seeded too.
	got, err := r.Resolve(SectionAbout, "fr")
	if err != nil {
		t.Fatalf("Resolve(about, fr) failed: %v", err)
	}
	if got.(*AboutContent).Title == defaultAbout().Title {
		t.Error("French about should differ from the English bundle")
	}
}

func TestSeedNeverOverwrites(t *testing.T) {
	r := setupTestResolver(t)

	edited := &AboutContent{Name: "Edited by admin"}
	if err := r.SaveBundle(SectionAbout, "en", edited); err != nil {
		t.Fatalf("SaveBundle failed: %v", err)
	}

	if err := r.SeedDefaultContent(); err != nil {
		t.Fatalf("SeedDefaultContent failed: %v", err)
	}

	got, err := r.Resolve(SectionAbout, "en")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.(*AboutContent).Name != "Edited by admin" {
		t.Errorf("seeding must not overwrite administered content, got %+v", got)
	}
}
