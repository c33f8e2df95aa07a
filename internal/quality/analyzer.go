// Package quality scores a company's hiring-process health from its
// repost rate and average posting duration.
//
// Two independent signals are OR-combined: churn via reposting, and
// unusually short listings (fake/filler postings or rapid-fill roles).
// Either alone can escalate the flag; red always wins over yellow.
package quality

import (
	"fmt"

	"jobmate/monitor-service/internal/model"
)

// Escalation thresholds.
const (
	yellowRepostRate  = 0.25
	redRepostRate     = 0.4
	yellowMinDuration = 14.0 // days
	redMinDuration    = 7.0  // days
)

// Observation pairs one posting with its repost verdict for this run.
type Observation struct {
	Job    model.JobRecord
	Repost *model.RepostMatch
}

// Analyze computes the quality assessment for one company's current job
// snapshot. Pure function: recomputed fresh every run, no history.
//
// An empty snapshot yields the QualityUnknown sentinel, not an error.
func Analyze(observations []Observation) model.CompanyQualityAssessment {
	if len(observations) == 0 {
		return model.CompanyQualityAssessment{
			QualityFlag: model.QualityUnknown,
			Reasons:     []string{"no_data"},
		}
	}

	total := len(observations)
	reposts := 0
	var durationSum float64
	durationSamples := 0
	for _, obs := range observations {
		if obs.Repost != nil {
			reposts++
		}
		if obs.Job.PostingDurationDays != nil {
			durationSum += float64(*obs.Job.PostingDurationDays)
			durationSamples++
		}
	}

	repostRate := float64(reposts) / float64(total)
	var avgDuration float64
	if durationSamples > 0 {
		avgDuration = durationSum / float64(durationSamples)
	}

	assessment := model.CompanyQualityAssessment{
		QualityFlag:        model.QualityGreen,
		RepostRate:         repostRate,
		AvgPostingDuration: avgDuration,
		TotalJobs:          total,
		TotalReposts:       reposts,
	}

	// Repost-rate rules first, duration rules second; escalate keeps the
	// red verdict even when a later rule only reaches yellow.
	if repostRate > redRepostRate {
		escalate(&assessment, model.QualityRed,
			fmt.Sprintf("repost rate %.0f%% exceeds %.0f%%", repostRate*100, redRepostRate*100))
	} else if repostRate > yellowRepostRate {
		escalate(&assessment, model.QualityYellow,
			fmt.Sprintf("repost rate %.0f%% exceeds %.0f%%", repostRate*100, yellowRepostRate*100))
	}

	if durationSamples > 0 {
		if avgDuration < redMinDuration {
			escalate(&assessment, model.QualityRed,
				fmt.Sprintf("average posting duration %.1f days is under %.0f days", avgDuration, redMinDuration))
		} else if avgDuration < yellowMinDuration {
			escalate(&assessment, model.QualityYellow,
				fmt.Sprintf("average posting duration %.1f days is under %.0f days", avgDuration, yellowMinDuration))
		}
	}

	return assessment
}

// escalate raises the flag (never lowers it) and records the reason.
func escalate(a *model.CompanyQualityAssessment, flag model.QualityFlag, reason string) {
	if rank(flag) > rank(a.QualityFlag) {
		a.QualityFlag = flag
	}
	a.Reasons = append(a.Reasons, reason)
}

func rank(f model.QualityFlag) int {
	switch f {
	case model.QualityYellow:
		return 1
	case model.QualityRed:
		return 2
	}
	return 0
}
