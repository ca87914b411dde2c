package keyword

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher retains files whose names contain at least one keyword as a
// case-insensitive substring. Matching uses Unicode case folding so names in
// mixed scripts compare the way the eye expects.
type Matcher struct {
	keywords []string
	folded   []string
}

// NewMatcher builds a Matcher over the configured keywords. Blank keywords
// are ignored.
func NewMatcher(keywords []string) *Matcher {
	folder := cases.Fold()
	m := &Matcher{
		keywords: make([]string, 0, len(keywords)),
		folded:   make([]string, 0, len(keywords)),
	}
	for _, keyword := range keywords {
		trimmed := strings.TrimSpace(keyword)
		if trimmed == "" {
			continue
		}
		m.keywords = append(m.keywords, trimmed)
		m.folded = append(m.folded, folder.String(trimmed))
	}
	return m
}

// Matches reports whether at least one keyword occurs in name, ignoring case.
func (m *Matcher) Matches(name string) bool {
	folded := cases.Fold().String(name)
	for _, keyword := range m.folded {
		if strings.Contains(folded, keyword) {
			return true
		}
	}
	return false
}

// Keywords returns the trimmed keyword list in configuration order.
func (m *Matcher) Keywords() []string {
	out := make([]string, len(m.keywords))
	copy(out, m.keywords)
	return out
}
