package portfolio

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Leading & Trailing  ", "leading-trailing"},
		{"Already-Slugged", "already-slugged"},
		{"Üñïçödé", ""},
		{"Youth, Climate & the Law!", "youth-climate-the-law"},
		{"multiple   spaces", "multiple-spaces"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", []string{"blog", "abc"}, "https://example.com/blog/abc"},
		{"https://example.com/", []string{"feed.xml"}, "https://example.com/feed.xml"},
		{"https://example.com/sub", []string{"blog"}, "https://example.com/sub/blog"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"go", []string{"go"}},
		{"go, web ,api", []string{"go", "web", "api"}},
		{",,a,,", []string{"a"}},
		// duplicates dropped case-insensitively, first spelling wins
		{"a, b ,a", []string{"a", "b"}},
		{"Climate, climate, CLIMATE, law", []string{"Climate", "law"}},
	}
	for _, tt := range tests {
		got := NormalizeTags(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("NormalizeTags(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("NormalizeTags(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 1},
		{1, 1},
		{199, 1},
		{200, 1},
		{201, 2},
		{1000, 5},
		{1001, 6},
	}
	for _, tt := range tests {
		content := strings.TrimSpace(strings.Repeat("word ", tt.words))
		if got := ReadingTime(content); got != tt.want {
			t.Errorf("ReadingTime(%d words) = %d, want %d", tt.words, got, tt.want)
		}
	}
}
