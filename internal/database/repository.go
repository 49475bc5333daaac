package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobpost-extraction/internal/models"
)

type Repository struct {
	db *pgxpool.Pool
}

func Connect(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// IMPORTANT: Supabase connection pooler (PgBouncer in Transaction mode)
	// does not support prepared statements easily. We MUST disable the statement cache.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// SaveJobPosting inserts an extracted posting or refreshes an existing one
// (source_url is the dedup key; re-extracting the same URL overwrites).
func (r *Repository) SaveJobPosting(ctx context.Context, job *models.JobPosting) (string, error) {
	query := `
		INSERT INTO job_postings (source_url, company, title, location, salary, posted_date,
			employment_type, experience_level, description, skills_required, extraction_tier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (source_url)
		DO UPDATE SET company = EXCLUDED.company, title = EXCLUDED.title, location = EXCLUDED.location,
			salary = EXCLUDED.salary, posted_date = EXCLUDED.posted_date,
			employment_type = EXCLUDED.employment_type, experience_level = EXCLUDED.experience_level,
			description = EXCLUDED.description, skills_required = EXCLUDED.skills_required,
			extraction_tier = EXCLUDED.extraction_tier, updated_at = now()
		RETURNING id`

	var id string
	err := r.db.QueryRow(ctx, query,
		job.SourceURL, job.Company, job.Title, job.Location, job.Salary, job.PostedDate,
		job.EmploymentType, job.ExperienceLevel, job.Description, job.SkillsRequired, string(job.ExtractionTier),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save job posting: %w", err)
	}

	return id, nil
}

// GetJobPostingByURL returns the stored extraction for a URL, if any.
func (r *Repository) GetJobPostingByURL(ctx context.Context, sourceURL string) (*models.JobPosting, error) {
	var job models.JobPosting
	var tier string

	query := `
		SELECT source_url, company, title, location, salary, posted_date,
			employment_type, experience_level, description, skills_required, extraction_tier
		FROM job_postings WHERE source_url = $1`
	err := r.db.QueryRow(ctx, query, sourceURL).Scan(
		&job.SourceURL, &job.Company, &job.Title, &job.Location, &job.Salary, &job.PostedDate,
		&job.EmploymentType, &job.ExperienceLevel, &job.Description, &job.SkillsRequired, &tier,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("job posting not found")
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}

	job.ExtractionTier = models.Tier(tier)
	return &job, nil
}
