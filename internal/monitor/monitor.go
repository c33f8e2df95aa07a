// Package monitor sequences the daily monitoring run: posting-status
// checks, classification, geo matching, repost detection and
// company-quality analysis over the current job set.
//
// The classifiers themselves are pure and embarrassingly parallel; the
// only I/O-bound stage is the per-posting status check, which fans out
// with bounded concurrency.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jobmate/monitor-service/internal/classify"
	"jobmate/monitor-service/internal/geo"
	"jobmate/monitor-service/internal/model"
	"jobmate/monitor-service/internal/quality"
	"jobmate/monitor-service/internal/repost"
)

// Store is the persistence surface the orchestrator needs. Implemented
// by store.Store; tests use an in-memory fake.
type Store interface {
	ListOpenJobs(ctx context.Context) ([]model.JobRecord, error)
	ListClosedJobsByCompany(ctx context.Context, company string) ([]model.JobRecord, error)
	MarkClosed(ctx context.Context, jobID uuid.UUID, durationDays int) error
	SaveClassification(ctx context.Context, jobID uuid.UUID, c model.JobClassification) error
	SaveGeoClassification(ctx context.Context, jobID uuid.UUID, g model.GeoClassification) error
	SaveRepostMatch(ctx context.Context, jobID uuid.UUID, m model.RepostMatch) error
	SaveQualityAssessment(ctx context.Context, company string, a model.CompanyQualityAssessment) error
	PublishRunCompleted(ctx context.Context, report model.RunReport) error
}

// Orchestrator runs one monitoring cycle end to end.
type Orchestrator struct {
	store       Store
	checker     StatusChecker
	classifier  *classify.Classifier
	geoMatcher  *geo.Matcher
	detector    *repost.Detector
	concurrency int
	now         func() time.Time
	log         zerolog.Logger
}

// New returns a configured Orchestrator.
func New(st Store, checker StatusChecker, concurrency int, log zerolog.Logger) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Orchestrator{
		store:       st,
		checker:     checker,
		classifier:  classify.NewDefaultClassifier(),
		geoMatcher:  geo.NewDefaultMatcher(),
		detector:    repost.NewDefaultDetector(),
		concurrency: concurrency,
		now:         time.Now,
		log:         log.With().Str("component", "monitor").Logger(),
	}
}

// Run executes one monitoring cycle: check statuses, mark closed
// postings, annotate the still-open ones, and refresh per-company
// quality snapshots. Individual job failures are logged and skipped — a
// single bad posting must not abort the run.
func (o *Orchestrator) Run(ctx context.Context) (model.RunReport, error) {
	report := model.RunReport{StartedAt: o.now()}

	jobs, err := o.store.ListOpenJobs(ctx)
	if err != nil {
		return report, fmt.Errorf("list open jobs: %w", err)
	}
	report.JobsChecked = len(jobs)
	o.log.Info().Int("jobs", len(jobs)).Msg("monitoring run started")

	o.checkStatuses(ctx, jobs, &report)

	// Per-company state for this run: the closed-posting pool (for
	// repost detection) and the observations feeding quality analysis.
	// observed guards against counting a posting twice when it was
	// closed during this run and then reappears in the refreshed pool.
	pools := make(map[string][]model.JobRecord)
	observations := make(map[string][]quality.Observation)
	observed := make(map[uuid.UUID]bool)

	for i := range jobs {
		job := jobs[i]
		company := companyKey(job.CompanyName)

		pool, ok := pools[company]
		if !ok {
			pool, err = o.store.ListClosedJobsByCompany(ctx, job.CompanyName)
			if err != nil {
				o.log.Warn().Err(err).Str("company", job.CompanyName).Msg("closed pool lookup failed")
				pool = nil
			}
			pools[company] = pool
			// Closed postings count toward the company snapshot too.
			for _, closed := range pool {
				if !observed[closed.ID] {
					observed[closed.ID] = true
					observations[company] = append(observations[company], quality.Observation{Job: closed})
				}
			}
		}

		if job.Status == model.StatusClosed {
			// Closed during this run.
			if !observed[job.ID] {
				observed[job.ID] = true
				observations[company] = append(observations[company], quality.Observation{Job: job})
			}
			continue
		}

		classification := o.classifier.Classify(job)
		if err := o.store.SaveClassification(ctx, job.ID, classification); err != nil {
			o.log.Warn().Err(err).Str("job", job.ID.String()).Msg("save classification failed")
		} else {
			report.JobsClassified++
		}

		geoResult := o.geoMatcher.ClassifyLocation(job.Location, job.Description, job.CompanyLocation)
		if err := o.store.SaveGeoClassification(ctx, job.ID, geoResult); err != nil {
			o.log.Warn().Err(err).Str("job", job.ID.String()).Msg("save geo classification failed")
		}

		match := o.detector.Detect(job, pool)
		if match != nil {
			if err := o.store.SaveRepostMatch(ctx, job.ID, *match); err != nil {
				o.log.Warn().Err(err).Str("job", job.ID.String()).Msg("save repost match failed")
			} else {
				report.RepostsDetected++
			}
		}

		observations[company] = append(observations[company], quality.Observation{Job: job, Repost: match})
	}

	for company, obs := range observations {
		assessment := quality.Analyze(obs)
		if err := o.store.SaveQualityAssessment(ctx, company, assessment); err != nil {
			o.log.Warn().Err(err).Str("company", company).Msg("save quality assessment failed")
			continue
		}
		report.CompaniesAssessed++
		if assessment.QualityFlag == model.QualityYellow || assessment.QualityFlag == model.QualityRed {
			report.CompaniesFlagged++
		}
	}

	report.FinishedAt = o.now()
	if err := o.store.PublishRunCompleted(ctx, report); err != nil {
		o.log.Warn().Err(err).Msg("publish run report failed")
	}

	o.log.Info().
		Int("checked", report.JobsChecked).
		Int("closed", report.JobsClosed).
		Int("classified", report.JobsClassified).
		Int("reposts", report.RepostsDetected).
		Int("companies_flagged", report.CompaniesFlagged).
		Int("check_errors", report.CheckErrors).
		Msg("monitoring run complete")

	return report, nil
}

// checkStatuses fans the status checks out over a bounded worker set and
// marks newly closed postings, mutating the jobs slice in place.
func (o *Orchestrator) checkStatuses(ctx context.Context, jobs []model.JobRecord, report *model.RunReport) {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, o.concurrency)
	)

	for i := range jobs {
		wg.Add(1)
		go func(job *model.JobRecord) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			status, err := o.checker.Check(ctx, *job)
			if err != nil {
				o.log.Warn().Err(err).Str("job", job.ID.String()).Msg("status check failed — keeping OPEN")
				mu.Lock()
				report.CheckErrors++
				mu.Unlock()
				return
			}
			if status != model.StatusClosed {
				return
			}

			duration := int(o.now().Sub(job.CreatedAt).Hours() / 24)
			if err := o.store.MarkClosed(ctx, job.ID, duration); err != nil {
				o.log.Warn().Err(err).Str("job", job.ID.String()).Msg("mark closed failed")
				return
			}
			job.Status = model.StatusClosed
			job.PostingDurationDays = &duration

			mu.Lock()
			report.JobsClosed++
			mu.Unlock()
		}(&jobs[i])
	}
	wg.Wait()
}

func companyKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
