package apps

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// MatchType tags how a candidate matched the identifier.
type MatchType string

const (
	MatchExactName      MatchType = "exact_name"
	MatchPrefix         MatchType = "prefix"
	MatchContains       MatchType = "contains"
	MatchFuzzy          MatchType = "fuzzy"
	MatchFuzzyWord      MatchType = "fuzzy_word"
	MatchBundleContains MatchType = "bundle_contains"
)

// Match is a scored resolution candidate. Created transiently during
// resolution; never persisted.
type Match struct {
	Candidate ProcessCandidate
	Score     float64
	Type      MatchType
}

// Matching thresholds and penalties. These constants encode empirical
// UI-automation heuristics and are part of the observable contract; do not
// tune them without revisiting every caller's expectations.
const (
	fuzzyNameThreshold = 0.70 // Whole-name similarity floor
	fuzzyWordThreshold = 0.65 // Per-word similarity floor
	suggestThreshold   = 0.60 // Similarity floor for "did you mean" names
	fuzzyWeight        = 0.9  // Whole-name fuzzy score multiplier
	firstWordWeight    = 0.85 // Position multiplier for a first-word match
	laterWordWeight    = 0.75 // Position multiplier for any later word
	helperPenalty      = 0.8  // Name contains "helper"
	servicePenalty     = 0.7  // Name contains "service" or "theme"
	fuzzyMargin        = 0.05 // Ambiguity margin when the top match is fuzzy
	defaultMargin      = 0.10 // Ambiguity margin otherwise
	maxLengthDelta     = 3    // Max name/identifier length difference for fuzzy eligibility
	maxSuggestions     = 3
)

// browserIdentifiers are identifiers for which helper/renderer processes must
// never shadow the main application process.
var browserIdentifiers = map[string]bool{
	"safari":         true,
	"chrome":         true,
	"google chrome":  true,
	"chromium":       true,
	"firefox":        true,
	"edge":           true,
	"microsoft edge": true,
	"arc":            true,
	"brave":          true,
	"opera":          true,
}

// helperMarkers flag process names that belong to auxiliary browser processes.
var helperMarkers = []string{
	"helper", "renderer", "utility", "plugin", "service", "crashpad", "gpu", "background",
}

// Resolver maps a fuzzy textual identifier to exactly one running process.
type Resolver struct {
	log *zap.Logger
}

// NewResolver creates a resolver reporting diagnostics to log.
func NewResolver(log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{log: log}
}

// Resolve picks the single process the identifier refers to, or fails with
// *NotFoundError or *AmbiguousError. Both failures are recoverable by
// retrying with a more specific identifier.
func (r *Resolver) Resolve(identifier string, candidates []ProcessCandidate) (ProcessCandidate, error) {
	lowerID := strings.ToLower(identifier)

	// An exact bundle identifier is unambiguous by definition.
	for _, c := range candidates {
		if c.BundleID != "" && strings.EqualFold(c.BundleID, identifier) {
			r.log.Debug("resolved by bundle id",
				zap.String("identifier", identifier), zap.Int("pid", c.PID))
			return c, nil
		}
	}

	matches := scoreAll(lowerID, candidates)

	if browserIdentifiers[lowerID] {
		matches = dropBrowserHelpers(matches)
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	matches = dedupeByPID(matches)

	if len(matches) == 0 {
		return ProcessCandidate{}, &NotFoundError{
			Identifier:  identifier,
			Suggestions: suggestNames(lowerID, candidates),
		}
	}

	top := matches[0]
	margin := defaultMargin
	if strings.Contains(string(top.Type), "fuzzy") {
		margin = fuzzyMargin
	}
	var tied []Match
	for _, m := range matches {
		if top.Score-m.Score < margin {
			tied = append(tied, m)
		}
	}
	if len(tied) > 1 {
		return ProcessCandidate{}, &AmbiguousError{Identifier: identifier, Matches: tied}
	}

	r.log.Debug("resolved application",
		zap.String("identifier", identifier),
		zap.String("name", top.Candidate.Name),
		zap.Int("pid", top.Candidate.PID),
		zap.Float64("score", top.Score),
		zap.String("type", string(top.Type)))
	return top.Candidate, nil
}

// scoreAll scores every candidate against the lowercased identifier. Each
// candidate contributes at most one match; the first matching rule wins.
func scoreAll(lowerID string, candidates []ProcessCandidate) []Match {
	var matches []Match
	for _, c := range candidates {
		if m, ok := scoreCandidate(lowerID, c); ok {
			matches = append(matches, m)
		}
	}
	return matches
}

func scoreCandidate(lowerID string, c ProcessCandidate) (Match, bool) {
	lowerName := strings.ToLower(c.Name)

	if lowerName == lowerID {
		return Match{c, 1.0, MatchExactName}, true
	}
	if strings.HasPrefix(lowerName, lowerID) {
		return Match{c, ratio(lowerID, lowerName), MatchPrefix}, true
	}
	if strings.Contains(lowerName, lowerID) {
		return Match{c, 0.8 * ratio(lowerID, lowerName), MatchContains}, true
	}
	if m, ok := scoreFuzzy(lowerID, lowerName, c); ok {
		return m, true
	}
	if c.BundleID != "" {
		lowerBundle := strings.ToLower(c.BundleID)
		if strings.Contains(lowerBundle, lowerID) {
			return Match{c, 0.6 * ratio(lowerID, lowerBundle), MatchBundleContains}, true
		}
	}
	return Match{}, false
}

// scoreFuzzy applies similarity matching, first against the whole name, then
// word by word. Only strings whose lengths are within maxLengthDelta of the
// identifier are eligible; wildly different lengths make edit distance
// meaningless for short identifiers.
func scoreFuzzy(lowerID, lowerName string, c ProcessCandidate) (Match, bool) {
	if lengthDelta(lowerID, lowerName) <= maxLengthDelta {
		if sim := Similarity(lowerID, lowerName); sim >= fuzzyNameThreshold {
			return Match{c, sim * fuzzyWeight, MatchFuzzy}, true
		}
	}

	penalty := 1.0
	if strings.Contains(lowerName, "helper") {
		penalty *= helperPenalty
	}
	if strings.Contains(lowerName, "service") || strings.Contains(lowerName, "theme") {
		penalty *= servicePenalty
	}

	for i, word := range strings.Fields(lowerName) {
		if lengthDelta(lowerID, word) > maxLengthDelta {
			continue
		}
		sim := Similarity(lowerID, word)
		if sim < fuzzyWordThreshold {
			continue
		}
		weight := laterWordWeight
		if i == 0 {
			weight = firstWordWeight
		}
		return Match{c, sim * weight * penalty, MatchFuzzyWord}, true
	}
	return Match{}, false
}

// dropBrowserHelpers removes matches whose name suggests an auxiliary browser
// process. If that would remove every match, the filter is skipped entirely
// so a helper-only match set still resolves.
func dropBrowserHelpers(matches []Match) []Match {
	var kept []Match
	for _, m := range matches {
		if !isHelperName(m.Candidate.Name) {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return matches
	}
	return kept
}

func isHelperName(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range helperMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// dedupeByPID keeps the first (highest-scoring) match per process id.
// Matches must already be sorted by descending score.
func dedupeByPID(matches []Match) []Match {
	seen := make(map[int]bool, len(matches))
	var unique []Match
	for _, m := range matches {
		if seen[m.Candidate.PID] {
			continue
		}
		seen[m.Candidate.PID] = true
		unique = append(unique, m)
	}
	return unique
}

// suggestNames returns up to maxSuggestions candidate names similar enough to
// the identifier to be worth offering in a NotFound error.
func suggestNames(lowerID string, candidates []ProcessCandidate) []string {
	type scored struct {
		name string
		sim  float64
	}
	var near []scored
	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c.Name] {
			continue
		}
		sim := Similarity(lowerID, strings.ToLower(c.Name))
		if sim >= suggestThreshold {
			seen[c.Name] = true
			near = append(near, scored{c.Name, sim})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].sim > near[j].sim })
	if len(near) > maxSuggestions {
		near = near[:maxSuggestions]
	}
	var names []string
	for _, s := range near {
		names = append(names, s.name)
	}
	return names
}

func ratio(shorter, longer string) float64 {
	if len(longer) == 0 {
		return 0
	}
	return float64(len(shorter)) / float64(len(longer))
}

func lengthDelta(a, b string) int {
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return d
}
