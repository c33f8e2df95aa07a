package repost_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"jobmate/monitor-service/internal/model"
	"jobmate/monitor-service/internal/repost"
)

const backendDescription = "We are hiring a backend engineer to design and build " +
	"payment processing APIs in Go. You will own service reliability, write " +
	"integration tests, and collaborate with the platform team on deployments."

func makeJob(company, title, description string, status model.JobStatus, createdAt time.Time) model.JobRecord {
	return model.JobRecord{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CompanyName: company,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

// ── Detect ─────────────────────────────────────────────────────────────────

func TestDetect_FindsNearIdenticalRepost(t *testing.T) {
	d := repost.NewDefaultDetector()
	now := time.Now()

	duration := 21
	original := makeJob("Acme Corp", "Backend Engineer", backendDescription,
		model.StatusClosed, now.AddDate(0, 0, -30))
	original.PostingDurationDays = &duration

	// Same title, description ~95% overlapping.
	newJob := makeJob("Acme Corp", "Backend Engineer",
		backendDescription+" Competitive salary offered.",
		model.StatusOpen, now)

	got := d.Detect(newJob, []model.JobRecord{original})
	if got == nil {
		t.Fatal("Detect returned nil, want a repost match")
	}
	if got.OriginalJobID != original.ID {
		t.Errorf("OriginalJobID = %v, want %v", got.OriginalJobID, original.ID)
	}
	if got.OverallScore < 0.7 {
		t.Errorf("OverallScore = %v, want >= 0.7", got.OverallScore)
	}
	if got.DaysSinceOriginal != 30 {
		t.Errorf("DaysSinceOriginal = %d, want 30", got.DaysSinceOriginal)
	}
	if got.OriginalPostingDurationDays == nil || *got.OriginalPostingDurationDays != 21 {
		t.Errorf("OriginalPostingDurationDays = %v, want 21", got.OriginalPostingDurationDays)
	}
}

func TestDetect_BelowThresholdReturnsNil(t *testing.T) {
	d := repost.NewDefaultDetector()
	now := time.Now()

	unrelated := makeJob("Acme Corp", "Field Service Technician",
		"Travel to customer sites and repair industrial printing equipment.",
		model.StatusClosed, now.AddDate(0, 0, -10))
	newJob := makeJob("Acme Corp", "Backend Engineer", backendDescription,
		model.StatusOpen, now)

	if got := d.Detect(newJob, []model.JobRecord{unrelated}); got != nil {
		t.Errorf("Detect = %+v, want nil for dissimilar posting", got)
	}
}

func TestDetect_PicksHighestScoringCandidate(t *testing.T) {
	d := repost.NewDefaultDetector()
	now := time.Now()

	exact := makeJob("Acme Corp", "Backend Engineer", backendDescription,
		model.StatusClosed, now.AddDate(0, 0, -15))
	nearDup := makeJob("Acme Corp", "Backend Engineer",
		backendDescription+" Additional on-call rotation duties apply here.",
		model.StatusClosed, now.AddDate(0, 0, -45))
	newJob := makeJob("Acme Corp", "Backend Engineer", backendDescription,
		model.StatusOpen, now)

	got := d.Detect(newJob, []model.JobRecord{nearDup, exact})
	if got == nil {
		t.Fatal("Detect returned nil")
	}
	if got.OriginalJobID != exact.ID {
		t.Errorf("OriginalJobID = %v, want the exact duplicate %v", got.OriginalJobID, exact.ID)
	}
}

// ── Candidate-pool filtering ───────────────────────────────────────────────

func TestDetect_IgnoresOtherCompanies(t *testing.T) {
	d := repost.NewDefaultDetector()
	now := time.Now()

	other := makeJob("Globex", "Backend Engineer", backendDescription,
		model.StatusClosed, now.AddDate(0, 0, -5))
	newJob := makeJob("Acme Corp", "Backend Engineer", backendDescription,
		model.StatusOpen, now)

	if got := d.Detect(newJob, []model.JobRecord{other}); got != nil {
		t.Errorf("Detect matched a different company: %+v", got)
	}
}

func TestDetect_CompanyMatchIsCaseInsensitive(t *testing.T) {
	d := repost.NewDefaultDetector()
	now := time.Now()

	original := makeJob("ACME CORP", "Backend Engineer", backendDescription,
		model.StatusClosed, now.AddDate(0, 0, -5))
	newJob := makeJob("acme corp", "Backend Engineer", backendDescription,
		model.StatusOpen, now)

	if got := d.Detect(newJob, []model.JobRecord{original}); got == nil {
		t.Error("Detect should match company names case-insensitively")
	}
}

func TestDetect_IgnoresOpenPostings(t *testing.T) {
	d := repost.NewDefaultDetector()
	now := time.Now()

	stillOpen := makeJob("Acme Corp", "Backend Engineer", backendDescription,
		model.StatusOpen, now.AddDate(0, 0, -5))
	newJob := makeJob("Acme Corp", "Backend Engineer", backendDescription,
		model.StatusOpen, now)

	if got := d.Detect(newJob, []model.JobRecord{stillOpen}); got != nil {
		t.Errorf("Detect matched an OPEN posting: %+v", got)
	}
}

func TestDetect_IgnoresSelf(t *testing.T) {
	d := repost.NewDefaultDetector()
	now := time.Now()

	job := makeJob("Acme Corp", "Backend Engineer", backendDescription,
		model.StatusClosed, now)

	if got := d.Detect(job, []model.JobRecord{job}); got != nil {
		t.Errorf("Detect matched the job against itself: %+v", got)
	}
}

func TestDetect_EmptyPool(t *testing.T) {
	d := repost.NewDefaultDetector()

	newJob := makeJob("Acme Corp", "Backend Engineer", backendDescription,
		model.StatusOpen, time.Now())
	if got := d.Detect(newJob, nil); got != nil {
		t.Errorf("Detect = %+v, want nil for empty pool", got)
	}
}
