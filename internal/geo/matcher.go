// Package geo classifies free-text job locations against a hierarchical
// Northern-California region table (region → county → city → keyword).
//
// Matching is tiered: county hits are unambiguous administrative facts
// and score highest; colloquial free-text keywords ("bay area") are
// lower-precision and score lowest. The tier weights calibrate the
// relative confidence of results and must not be reordered.
package geo

import (
	"strings"

	"jobmate/monitor-service/internal/model"
	"jobmate/monitor-service/internal/textutil"
)

// Tier weights, highest to lowest precision.
const (
	countyWeight  = 1.0
	cityWeight    = 0.8
	metroWeight   = 0.6
	keywordWeight = 0.5

	// A remote posting is matched through the employer's own location,
	// which is a weaker signal than the posting's location field.
	remotePathDamping = 0.8
)

// Matcher classifies locations against an immutable Table. Stateless
// after construction; safe for concurrent use.
type Matcher struct {
	table Table
}

// NewMatcher returns a Matcher for the given table.
func NewMatcher(table Table) *Matcher {
	return &Matcher{table: table}
}

// NewDefaultMatcher returns a Matcher with the built-in table.
func NewDefaultMatcher() *Matcher {
	return NewMatcher(DefaultTable())
}

// IsRemoteJob reports whether the posting text marks the job as remote.
func (m *Matcher) IsRemoteJob(description, location string) bool {
	return textutil.ContainsAny(description+" "+location, m.table.RemoteIndicators)
}

// ClassifyLocation matches a location string against the region table.
//
// For remote postings with a known company location, the company location
// substitutes for the posting location: a remote posting's geographic
// relevance is the employer's site, not the word "remote". Results from
// that path carry damped confidence.
//
// A nonzero score with no resolved region still flags
// IsNorthernCalifornia — kept as-is pending product-owner review.
func (m *Matcher) ClassifyLocation(location, jobDescription, companyLocation string) model.GeoClassification {
	target := location
	remotePath := false
	if m.IsRemoteJob(jobDescription, location) && strings.TrimSpace(companyLocation) != "" {
		target = companyLocation
		remotePath = true
	}

	norm := m.applyAliases(textutil.Normalize(target))

	var (
		best      *RegionEntry
		bestScore float64
		bestMatch regionMatch
	)
	for i := range m.table.Regions {
		entry := &m.table.Regions[i]
		score, match := scoreRegion(norm, entry)
		if score > bestScore {
			best = entry
			bestScore = score
			bestMatch = match
		}
	}

	generalMatches := extractPhrases(norm, m.table.GeneralKeywords)
	totalScore := bestScore + keywordWeight*float64(len(generalMatches))

	result := model.GeoClassification{
		IsNorthernCalifornia: best != nil || totalScore > 0,
	}
	if best != nil {
		region := best.Region
		result.Region = &region
		result.County = bestMatch.county
		result.City = bestMatch.city
		result.MetroArea = bestMatch.metro
	}
	result.MatchedKeywords = dedupe(append(bestMatch.keywords, generalMatches...))

	confidence := totalScore
	if confidence > 1 {
		confidence = 1
	}
	if remotePath {
		confidence *= remotePathDamping
	}
	result.ConfidenceScore = confidence

	return result
}

// regionMatch carries the first matched display name per tier plus every
// matched phrase in normalised form.
type regionMatch struct {
	county   *string
	city     *string
	metro    *string
	keywords []string
}

func scoreRegion(norm string, entry *RegionEntry) (float64, regionMatch) {
	var (
		score float64
		match regionMatch
	)

	for _, county := range entry.Counties {
		if containsPhrase(norm, strings.ToLower(county)) {
			score += countyWeight
			if match.county == nil {
				c := county
				match.county = &c
			}
			match.keywords = append(match.keywords, strings.ToLower(county))
		}
	}
	for _, city := range entry.Cities {
		if containsPhrase(norm, strings.ToLower(city)) {
			score += cityWeight
			if match.city == nil {
				c := city
				match.city = &c
			}
			match.keywords = append(match.keywords, strings.ToLower(city))
		}
	}
	for _, metro := range entry.MetroAreas {
		if containsPhrase(norm, strings.ToLower(metro)) {
			score += metroWeight
			if match.metro == nil {
				c := metro
				match.metro = &c
			}
			match.keywords = append(match.keywords, strings.ToLower(metro))
		}
	}
	for _, kw := range entry.Keywords {
		if containsPhrase(norm, kw) {
			score += keywordWeight
			match.keywords = append(match.keywords, kw)
		}
	}

	return score, match
}

// applyAliases rewrites colloquial tokens to canonical form on word
// boundaries ("sf" must not fire inside "transfer").
func (m *Matcher) applyAliases(norm string) string {
	padded := " " + norm + " "
	for _, alias := range m.table.Aliases {
		padded = strings.ReplaceAll(padded, " "+alias.From+" ", " "+alias.To+" ")
	}
	return strings.TrimSpace(padded)
}

func extractPhrases(norm string, phrases []string) []string {
	var matched []string
	for _, p := range phrases {
		if containsPhrase(norm, p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// containsPhrase is word-boundary containment over normalised text.
func containsPhrase(norm, phrase string) bool {
	if norm == "" || phrase == "" {
		return false
	}
	return strings.Contains(" "+norm+" ", " "+phrase+" ")
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
