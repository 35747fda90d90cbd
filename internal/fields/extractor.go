package fields

import "strings"

// Extractor applies the fixed pattern table to contract text.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract evaluates every pattern independently against text and returns a
// value under every key; fields without a match get NotFound. The same text
// always yields the same mapping.
func (x *Extractor) Extract(text string) map[string]string {
	out := make(map[string]string, len(patterns))
	for _, p := range patterns {
		out[p.Key] = p.find(text)
	}
	return out
}

func (p Pattern) find(text string) string {
	m, err := p.re.FindStringMatch(text)
	if err != nil || m == nil {
		return NotFound
	}
	// Join the capture groups that matched something; group 0 is the whole
	// match and is skipped.
	groups := m.Groups()
	parts := make([]string, 0, len(groups)-1)
	for _, g := range groups[1:] {
		if len(g.Captures) == 0 {
			continue
		}
		parts = append(parts, g.String())
	}
	return normalize(strings.Join(parts, " "))
}

// normalize collapses every whitespace run (newlines included) to one space
// and trims the ends.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
