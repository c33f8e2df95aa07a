// Package store persists job records and monitoring annotations.
//
// Job rows live in the jobs table (fed from discovery's job_feed);
// annotation results are upserted as JSONB, one row per job and type.
// Company quality snapshots are additionally cached in Redis and a
// run-completed event is published for downstream consumers.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"jobmate/monitor-service/internal/model"
)

const (
	qualityCacheTTL = 24 * time.Hour
	runEventChannel = "EVENT_MONITOR_RUN"
)

// Store wraps the PostgreSQL pool and Redis client.
type Store struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

// New returns a configured Store.
func New(pool *pgxpool.Pool, rdb *redis.Client) *Store {
	return &Store{pool: pool, rdb: rdb}
}

const jobColumns = `id, title, description, location, company_name,
	COALESCE(company_location, ''), COALESCE(source_url, ''),
	required_skills, preferred_skills, status, created_at, posting_duration_days`

// ListOpenJobs returns every posting currently marked OPEN, oldest first.
func (s *Store) ListOpenJobs(ctx context.Context) ([]model.JobRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = 'OPEN' ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("listOpenJobs query: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

// ListClosedJobsByCompany returns the closed-posting pool for one company
// (case-insensitive), newest first.
func (s *Store) ListClosedJobsByCompany(ctx context.Context, company string) ([]model.JobRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE lower(company_name) = lower($1) AND status = 'CLOSED'
		 ORDER BY created_at DESC`,
		strings.TrimSpace(company),
	)
	if err != nil {
		return nil, fmt.Errorf("listClosedJobsByCompany query: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

func scanJobs(rows pgx.Rows) ([]model.JobRecord, error) {
	var jobs []model.JobRecord
	for rows.Next() {
		var j model.JobRecord
		var status string
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Location, &j.CompanyName,
			&j.CompanyLocation, &j.SourceURL,
			&j.RequiredSkills, &j.PreferredSkills,
			&status, &j.CreatedAt, &j.PostingDurationDays,
		); err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		st, err := model.ParseJobStatus(status)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", j.ID, err)
		}
		j.Status = st
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// MarkClosed transitions a posting to CLOSED and records how long it was
// listed.
func (s *Store) MarkClosed(ctx context.Context, jobID uuid.UUID, durationDays int) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE jobs
		 SET status = 'CLOSED', closed_at = now(), posting_duration_days = $2
		 WHERE id = $1 AND status = 'OPEN'`,
		jobID, durationDays,
	)
	if err != nil {
		return fmt.Errorf("markClosed exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("markClosed: job %s not found or not open", jobID)
	}
	return nil
}

// SaveClassification upserts the white-collar classification for a job.
func (s *Store) SaveClassification(ctx context.Context, jobID uuid.UUID, c model.JobClassification) error {
	return s.upsertAnnotation(ctx, "job_classifications", jobID, c)
}

// SaveGeoClassification upserts the geo annotation for a job.
func (s *Store) SaveGeoClassification(ctx context.Context, jobID uuid.UUID, g model.GeoClassification) error {
	return s.upsertAnnotation(ctx, "job_geo_classifications", jobID, g)
}

// SaveRepostMatch upserts the repost link for a job.
func (s *Store) SaveRepostMatch(ctx context.Context, jobID uuid.UUID, m model.RepostMatch) error {
	return s.upsertAnnotation(ctx, "job_reposts", jobID, m)
}

func (s *Store) upsertAnnotation(ctx context.Context, table string, jobID uuid.UUID, result any) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", table, err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO `+table+` (job_id, result, updated_at)
		 VALUES ($1, $2::jsonb, now())
		 ON CONFLICT (job_id) DO UPDATE SET result = EXCLUDED.result, updated_at = now()`,
		jobID, string(raw),
	)
	if err != nil {
		return fmt.Errorf("%s upsert: %w", table, err)
	}
	return nil
}

// SaveQualityAssessment upserts the per-company quality snapshot and
// refreshes the Redis cache entry read by the Gateway.
func (s *Store) SaveQualityAssessment(ctx context.Context, company string, a model.CompanyQualityAssessment) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("quality marshal: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO company_quality (company_name, result, updated_at)
		 VALUES (lower($1), $2::jsonb, now())
		 ON CONFLICT (company_name) DO UPDATE SET result = EXCLUDED.result, updated_at = now()`,
		strings.TrimSpace(company), string(raw),
	)
	if err != nil {
		return fmt.Errorf("quality upsert: %w", err)
	}

	if err := s.rdb.Set(ctx, qualityCacheKey(company), raw, qualityCacheTTL).Err(); err != nil {
		return fmt.Errorf("quality cache set: %w", err)
	}
	return nil
}

// CachedQualityAssessment reads a company's cached snapshot, returning
// (nil, nil) on a cache miss.
func (s *Store) CachedQualityAssessment(ctx context.Context, company string) (*model.CompanyQualityAssessment, error) {
	raw, err := s.rdb.Get(ctx, qualityCacheKey(company)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("quality cache get: %w", err)
	}
	var a model.CompanyQualityAssessment
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("quality cache unmarshal: %w", err)
	}
	return &a, nil
}

// PublishRunCompleted announces a finished monitoring run on the shared
// event channel (Gateway forwards it over SSE, same as tracker events).
func (s *Store) PublishRunCompleted(ctx context.Context, report model.RunReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("run report marshal: %w", err)
	}
	if err := s.rdb.Publish(ctx, runEventChannel, raw).Err(); err != nil {
		return fmt.Errorf("run report publish: %w", err)
	}
	return nil
}

func qualityCacheKey(company string) string {
	return "monitor:quality:" + strings.ToLower(strings.TrimSpace(company))
}
