// Package model defines shared data structures for the monitor service.
package model

import (
	"time"

	"github.com/google/uuid"
)

// JobRecord is a job posting under monitoring. Rows originate in the
// job_feed table populated by discovery-service; the monitor only reads
// them and attaches annotations.
type JobRecord struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Location            string    `json:"location"`
	CompanyName         string    `json:"companyName"`
	CompanyLocation     string    `json:"companyLocation,omitempty"`
	SourceURL           string    `json:"sourceUrl"`
	RequiredSkills      []string  `json:"requiredSkills,omitempty"`
	PreferredSkills     []string  `json:"preferredSkills,omitempty"`
	Status              JobStatus `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	PostingDurationDays *int      `json:"postingDurationDays,omitempty"`
}

// JobClassification is the white-collar / category / seniority annotation
// produced for a single posting. Optional fields stay nil when no signal
// was found — absence of classification is a valid outcome, not an error.
type JobClassification struct {
	IsWhiteCollar   bool    `json:"isWhiteCollar"`
	ConfidenceScore float64 `json:"confidenceScore"`
	JobCategory     *string `json:"jobCategory,omitempty"`
	JobSector       *string `json:"jobSector,omitempty"`

	SeniorityLevel     *SeniorityLevel   `json:"seniorityLevel,omitempty"`
	EducationLevel     *EducationLevel   `json:"educationLevel,omitempty"`
	ExperienceYearsMin *int              `json:"experienceYearsMin,omitempty"`
	ExperienceYearsMax *int              `json:"experienceYearsMax,omitempty"`
	RemoteWorkOption   *RemoteWorkOption `json:"remoteWorkOption,omitempty"`

	// Evidence trail: which keywords drove the decision.
	ClassificationKeywords []string `json:"classificationKeywords,omitempty"`
	SectorKeywords         []string `json:"sectorKeywords,omitempty"`
	SkillKeywords          []string `json:"skillKeywords,omitempty"`
}

// GeoClassification is the Northern-California region annotation for a
// posting's location string.
type GeoClassification struct {
	IsNorthernCalifornia bool     `json:"isNorthernCalifornia"`
	Region               *Region  `json:"region,omitempty"`
	MetroArea            *string  `json:"metroArea,omitempty"`
	County               *string  `json:"county,omitempty"`
	City                 *string  `json:"city,omitempty"`
	ConfidenceScore      float64  `json:"confidenceScore"`
	MatchedKeywords      []string `json:"matchedKeywords,omitempty"`
}

// RepostMatch links a new posting to a previously closed posting from the
// same company that it appears to re-list.
type RepostMatch struct {
	OriginalJobID               uuid.UUID `json:"originalJobId"`
	TitleScore                  float64   `json:"titleScore"`
	DescriptionScore            float64   `json:"descriptionScore"`
	RequirementsScore           float64   `json:"requirementsScore"`
	OverallScore                float64   `json:"overallScore"`
	DaysSinceOriginal           int       `json:"daysSinceOriginal"`
	OriginalPostingDurationDays *int      `json:"originalPostingDurationDays,omitempty"`
}

// CompanyQualityAssessment is the traffic-light hiring-quality signal for
// one company, recomputed from scratch on every monitoring run.
type CompanyQualityAssessment struct {
	QualityFlag        QualityFlag `json:"qualityFlag"`
	RepostRate         float64     `json:"repostRate"`
	AvgPostingDuration float64     `json:"avgPostingDuration"`
	TotalJobs          int         `json:"totalJobs"`
	TotalReposts       int         `json:"totalReposts"`
	Reasons            []string    `json:"reasons,omitempty"`
}
