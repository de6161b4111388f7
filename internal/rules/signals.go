package rules

import (
	"regexp"
	"strings"
)

// Negative-signal scanning is split into two matchers composed with OR:
// single words match on token boundaries ("hold" does not fire inside
// "holding"), multi-word phrases match as plain substrings ("on hold").

type wordMatcher struct {
	words    []string
	patterns []*regexp.Regexp
}

func newWordMatcher(words []string) *wordMatcher {
	m := &wordMatcher{words: words}
	for _, w := range words {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
		m.patterns = append(m.patterns, re)
	}
	return m
}

// Match returns the configured words present in text as whole tokens,
// in configuration order.
func (m *wordMatcher) Match(text string) []string {
	var hits []string
	for i, re := range m.patterns {
		if re.MatchString(text) {
			hits = append(hits, m.words[i])
		}
	}
	return hits
}

type phraseMatcher struct {
	phrases []string
}

func newPhraseMatcher(phrases []string) *phraseMatcher {
	return &phraseMatcher{phrases: phrases}
}

// Match returns the configured phrases contained in text, case-insensitive,
// in configuration order.
func (m *phraseMatcher) Match(text string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, p := range m.phrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			hits = append(hits, p)
		}
	}
	return hits
}
