// Package classify implements white-collar job classification: a
// keyword-scored white/blue-collar decision plus category, sector,
// seniority, education, experience-years and remote-work extraction.
//
// Every operation is a total function over string input — empty or
// missing text degrades to "no match" / zero confidence, never an error.
// A Classifier is stateless after construction and safe for concurrent
// use from any number of goroutines.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"jobmate/monitor-service/internal/model"
	"jobmate/monitor-service/internal/textutil"
)

const whiteCollarThreshold = 0.5

// Per-match score weights for the white-collar confidence formula.
const (
	whiteCollarWeight  = 0.1
	blueCollarPenalty  = 0.2
	educationBoost     = 0.3
	certificationBoost = 0.2
)

var (
	// "3-5 years", "3 to 5 years"
	yearsRangeRE = regexp.MustCompile(`(\d+)\s*(?:-|–|to)\s*(\d+)\+?\s*years?`)
	// "5+ years", "minimum 5 years", "minimum of 5 years", "at least 5 years"
	yearsMinRE = regexp.MustCompile(`(?:(\d+)\+\s*years?|minimum\s+(?:of\s+)?(\d+)\s*years?|at\s+least\s+(\d+)\s*years?)`)
	// "5 years"
	yearsSingleRE = regexp.MustCompile(`(\d+)\s*years?`)
)

// Classifier classifies postings against an immutable Vocabulary.
type Classifier struct {
	vocab Vocabulary
}

// NewClassifier returns a Classifier using the given vocabulary.
func NewClassifier(vocab Vocabulary) *Classifier {
	return &Classifier{vocab: vocab}
}

// NewDefaultClassifier returns a Classifier with the built-in tables.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultVocabulary())
}

// Classify runs the full classification over a posting and assembles the
// composite result. Each extraction is independent; none consumes the
// output of another.
func (c *Classifier) Classify(job model.JobRecord) model.JobClassification {
	isWhiteCollar, confidence, matched := c.ClassifyWhiteCollar(job.Title, job.Description)

	result := model.JobClassification{
		IsWhiteCollar:          isWhiteCollar,
		ConfidenceScore:        confidence,
		ClassificationKeywords: matched,
	}

	combined := job.Title + " " + job.Description

	if category, _ := c.ClassifyCategory(job.Title, job.Description); category != "" {
		result.JobCategory = &category
	}
	if sector, sectorKeywords := c.ClassifySector(job.Title, job.Description); sector != "" {
		result.JobSector = &sector
		result.SectorKeywords = sectorKeywords
	}
	result.SeniorityLevel = c.SeniorityLevel(job.Title, job.Description)
	result.EducationLevel = c.EducationLevel(combined)
	result.ExperienceYearsMin, result.ExperienceYearsMax = c.ExperienceYears(combined)
	result.RemoteWorkOption = c.RemoteWorkOption(job.Description, job.Location)
	result.SkillKeywords = textutil.ExtractKeywords(combined, c.vocab.Skills)

	return result
}

// ClassifyWhiteCollar scores the combined title+description against the
// white- and blue-collar keyword tables.
//
// Any blue-collar match is a hard veto, not just a penalty: a single
// white-collar buzzword ("manager") must not flip a posting that also
// carries explicit blue-collar terms ("cashier", "warehouse").
func (c *Classifier) ClassifyWhiteCollar(title, description string) (bool, float64, []string) {
	combined := title + " " + description

	whiteMatches := textutil.ExtractKeywords(combined, c.vocab.WhiteCollar)
	blueMatches := textutil.ExtractKeywords(combined, c.vocab.BlueCollar)

	confidence := whiteCollarWeight * float64(len(whiteMatches))
	if textutil.ContainsAny(combined, c.vocab.EducationTerms) {
		confidence += educationBoost
	}
	if textutil.ContainsAny(combined, c.vocab.CertificationTerms) {
		confidence += certificationBoost
	}
	confidence -= blueCollarPenalty * float64(len(blueMatches))
	confidence = clamp01(confidence)

	isWhiteCollar := confidence >= whiteCollarThreshold && len(blueMatches) == 0
	return isWhiteCollar, confidence, whiteMatches
}

// ClassifyCategory picks the category with the most keyword hits.
// Ties break to the first-declared category; zero hits means no category.
func (c *Classifier) ClassifyCategory(title, description string) (string, []string) {
	return argmaxCategory(title+" "+description, c.vocab.Categories)
}

// ClassifySector picks the sector with the most keyword hits, with the
// same tie-breaking rule as ClassifyCategory.
func (c *Classifier) ClassifySector(title, description string) (string, []string) {
	return argmaxCategory(title+" "+description, c.vocab.Sectors)
}

func argmaxCategory(text string, table []CategoryKeywords) (string, []string) {
	var (
		bestName    string
		bestMatches []string
	)
	for _, entry := range table {
		matches := textutil.ExtractKeywords(text, entry.Keywords)
		if len(matches) > len(bestMatches) {
			bestName = entry.Name
			bestMatches = matches
		}
	}
	return bestName, bestMatches
}

// SeniorityLevel returns the first seniority level whose indicator
// keywords match, in table declaration order. When no keyword matches it
// falls back to parsing a "N years" figure: ≥10 → senior, ≥5 → mid,
// otherwise entry. Nil when neither signal is present.
func (c *Classifier) SeniorityLevel(title, description string) *model.SeniorityLevel {
	combined := title + " " + description
	for _, entry := range c.vocab.Seniority {
		if textutil.ContainsAny(combined, entry.Keywords) {
			level := entry.Level
			return &level
		}
	}

	m := yearsSingleRE.FindStringSubmatch(strings.ToLower(combined))
	if m == nil {
		return nil
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	level := model.SeniorityEntry
	switch {
	case years >= 10:
		level = model.SenioritySenior
	case years >= 5:
		level = model.SeniorityMid
	}
	return &level
}

// EducationLevel returns the highest education credential mentioned,
// checking indicator sets in descending precedence
// (phd > professional > masters > bachelors > associates > high_school).
func (c *Classifier) EducationLevel(text string) *model.EducationLevel {
	for _, entry := range c.vocab.Education {
		if textutil.ContainsAny(text, entry.Keywords) {
			level := entry.Level
			return &level
		}
	}
	return nil
}

// ExperienceYears extracts a required-experience range from free text.
// Patterns in priority order: range ("3-5 years"), minimum ("5+ years",
// "minimum 5 years"), single value ("5 years"). Returns (nil, nil) when
// nothing matches.
//
// Runs over the raw lowercased text, not the normalised form — the "+"
// and "-" characters the patterns rely on are stripped by normalisation.
func (c *Classifier) ExperienceYears(text string) (*int, *int) {
	lower := strings.ToLower(text)

	if m := yearsRangeRE.FindStringSubmatch(lower); m != nil {
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return &lo, &hi
		}
	}

	if m := yearsMinRE.FindStringSubmatch(lower); m != nil {
		for _, group := range m[1:] {
			if group == "" {
				continue
			}
			if n, err := strconv.Atoi(group); err == nil {
				return &n, &n
			}
		}
	}

	if m := yearsSingleRE.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n, &n
		}
	}

	return nil, nil
}

// RemoteWorkOption inspects description+location for work-arrangement
// keywords. Remote together with hybrid/flexible terms means hybrid;
// remote alone means remote; hybrid or flexible terms alone keep their
// own bucket; onsite terms mean onsite; otherwise nil.
func (c *Classifier) RemoteWorkOption(description, location string) *model.RemoteWorkOption {
	combined := description + " " + location

	remote := textutil.ContainsAny(combined, c.vocab.RemoteKeywords)
	hybrid := textutil.ContainsAny(combined, c.vocab.HybridKeywords)
	flexible := textutil.ContainsAny(combined, c.vocab.FlexibleKeywords)
	onsite := textutil.ContainsAny(combined, c.vocab.OnsiteKeywords)

	var option model.RemoteWorkOption
	switch {
	case remote && (hybrid || flexible):
		option = model.RemoteOptionHybrid
	case remote:
		option = model.RemoteOptionRemote
	case hybrid:
		option = model.RemoteOptionHybrid
	case flexible:
		option = model.RemoteOptionFlexible
	case onsite:
		option = model.RemoteOptionOnsite
	default:
		return nil
	}
	return &option
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
