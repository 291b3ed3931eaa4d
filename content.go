package portfolio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Section names served by the public portfolio surface.
const (
	SectionAbout        = "about"
	SectionLeadership   = "leadership"
	SectionAchievements = "achievements"
	SectionEvents       = "events"
	SectionProjects     = "projects"
)

// DefaultLanguage is the guaranteed terminal entry of every fallback
// chain. An English variant must exist for each section.
const DefaultLanguage = "en"

// Languages maps supported language codes to their display names, as
// served by GET /api/languages.
var Languages = map[string]string{
	"en": "English",
	"fr": "Français",
	"ar": "العربية",
	"zh": "中文",
	"es": "Español",
}

// AboutContent is the bundle for the about/hero section.
type AboutContent struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Tagline     string   `json:"tagline"`
	Age         int      `json:"age,omitempty"`
	Nationality string   `json:"nationality,omitempty"`
	BasedIn     string   `json:"based_in,omitempty"`
	Bio         string   `json:"bio"`
	FocusAreas  []string `json:"focus_areas"`
	Mission     string   `json:"mission"`
	Vision      string   `json:"vision"`
}

// Position is a leadership role, current or past.
type Position struct {
	Title            string   `json:"title"`
	Organization     string   `json:"organization"`
	Period           string   `json:"period"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// LeadershipContent is the bundle for the leadership section.
type LeadershipContent struct {
	CurrentPositions []Position `json:"current_positions"`
	PastPositions    []Position `json:"past_positions"`
}

// Achievement is a fellowship or award entry.
type Achievement struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	Location     string `json:"location,omitempty"`
	Distinction  string `json:"distinction,omitempty"`
}

// AchievementsContent is the bundle for the achievements section.
type AchievementsContent struct {
	Fellowships []Achievement `json:"fellowships"`
	Awards      []Achievement `json:"awards"`
}

// Event is an upcoming or past engagement.
type Event struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// EventsContent is the bundle for the events section.
type EventsContent struct {
	UpcomingEvents []Event `json:"upcoming_events"`
	PastEvents     []Event `json:"past_events"`
}

// Project is a featured project card.
type Project struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// ProjectsContent is the bundle for the projects section.
type ProjectsContent struct {
	FeaturedProjects []Project `json:"featured_projects"`
}

// newBundle returns a zero value of the typed record for a section, so
// stored payloads are always decoded through a known shape.
func newBundle(section string) (any, bool) {
	switch section {
	case SectionAbout:
		return &AboutContent{}, true
	case SectionLeadership:
		return &LeadershipContent{}, true
	case SectionAchievements:
		return &AchievementsContent{}, true
	case SectionEvents:
		return &EventsContent{}, true
	case SectionProjects:
		return &ProjectsContent{}, true
	}
	return nil, false
}

// Resolver resolves localized section bundles from the store.
type Resolver struct {
	store *Store
}

// NewResolver creates a Resolver backed by the given Store.
func NewResolver(s *Store) *Resolver {
	return &Resolver{store: s}
}

// Resolve returns the bundle for section in the requested language,
// walking the fallback chain down to English. An unrecognized or
// missing language code degrades to English silently; only a section
// with no English variant resolves to ErrNotFound.
func (r *Resolver) Resolve(section, lang string) (any, error) {
	bundle, ok := newBundle(section)
	if !ok {
		return nil, fmt.Errorf("section %q: %w", section, ErrNotFound)
	}
	for _, code := range fallbackChain(lang) {
		payload, err := r.store.GetSection(section, code)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, err
		}
		if err := json.Unmarshal(payload, bundle); err != nil {
			return nil, fmt.Errorf("section %s/%s payload: %w", section, code, err)
		}
		return bundle, nil
	}
	return nil, fmt.Errorf("section %q: %w", section, ErrNotFound)
}

// SaveBundle marshals a typed bundle and persists it as the variant
// for (section, lang).
func (r *Resolver) SaveBundle(section, lang string, bundle any) error {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return err
	}
	return r.store.SaveSection(section, strings.ToLower(lang), payload)
}

// fallbackChain is the explicit ordered list of language codes tried
// for a request, always terminating at the default language.
func fallbackChain(lang string) []string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || lang == DefaultLanguage {
		return []string{DefaultLanguage}
	}
	return []string{lang, DefaultLanguage}
}
