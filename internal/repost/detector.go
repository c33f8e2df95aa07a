// Package repost detects re-listings: a new posting that is textually the
// same job as a previously closed posting from the same company.
package repost

import (
	"strings"

	"jobmate/monitor-service/internal/model"
	"jobmate/monitor-service/internal/similarity"
)

// Default similarity threshold: a candidate must reach this overall score
// to count as a repost.
const DefaultThreshold = 0.7

// Weights for the per-field similarity blend. Titles are short and
// high-signal but coincide across unrelated postings ("Software
// Engineer" recurs everywhere), so the description carries equal weight
// rather than letting the title dominate; the requirements signal is
// generic boilerplate more often than not and is downweighted.
const (
	titleWeight        = 0.4
	descriptionWeight  = 0.4
	requirementsWeight = 0.2
)

// Detector finds the closed posting a new posting most likely re-lists.
// Stateless apart from its scorer; safe for concurrent use.
type Detector struct {
	scorer    *similarity.Scorer
	threshold float64
}

// NewDetector returns a Detector with the given scorer and threshold.
func NewDetector(scorer *similarity.Scorer, threshold float64) *Detector {
	return &Detector{scorer: scorer, threshold: threshold}
}

// NewDefaultDetector returns a Detector with the default threshold.
func NewDefaultDetector() *Detector {
	return NewDetector(similarity.NewScorer(), DefaultThreshold)
}

// Detect compares newJob against the candidate pool and returns the
// highest-scoring repost link, or nil when no candidate reaches the
// threshold.
//
// Only candidates from the same company (case-insensitive), with status
// CLOSED and a different ID are considered.
func (d *Detector) Detect(newJob model.JobRecord, existingJobs []model.JobRecord) *model.RepostMatch {
	var best *model.RepostMatch

	for i := range existingJobs {
		candidate := &existingJobs[i]
		if !sameCompany(newJob.CompanyName, candidate.CompanyName) {
			continue
		}
		if candidate.Status != model.StatusClosed {
			continue
		}
		if candidate.ID == newJob.ID {
			continue
		}

		titleScore := d.scorer.Score(newJob.Title, candidate.Title)
		descScore := d.scorer.Score(newJob.Description, candidate.Description)
		reqScore := d.scorer.Score(requirementsText(newJob), requirementsText(*candidate))
		overall := titleWeight*titleScore + descriptionWeight*descScore + requirementsWeight*reqScore

		if overall < d.threshold {
			continue
		}
		if best != nil && overall <= best.OverallScore {
			continue
		}

		days := int(newJob.CreatedAt.Sub(candidate.CreatedAt).Hours() / 24)
		best = &model.RepostMatch{
			OriginalJobID:               candidate.ID,
			TitleScore:                  titleScore,
			DescriptionScore:            descScore,
			RequirementsScore:           reqScore,
			OverallScore:                overall,
			DaysSinceOriginal:           days,
			OriginalPostingDurationDays: candidate.PostingDurationDays,
		}
	}

	return best
}

// requirementsText joins the required and preferred skill lists into one
// comparable blob.
func requirementsText(job model.JobRecord) string {
	parts := make([]string, 0, len(job.RequiredSkills)+len(job.PreferredSkills))
	parts = append(parts, job.RequiredSkills...)
	parts = append(parts, job.PreferredSkills...)
	return strings.Join(parts, " ")
}

func sameCompany(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
