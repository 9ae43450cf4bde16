package repository

import (
	"context"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/domain"
)

// JobRepository defines the storage contract for jobs and accepted jobs.
// Implementations validate inputs and enforce ownership and dedup rules
// before touching the store; every operation surfaces one of the domain
// error kinds on failure.
type JobRepository interface {
	// EnsureIndexes idempotently creates the secondary indexes the job
	// queries rely on. Callers treat failures as non-fatal.
	EnsureIndexes(ctx context.Context) error

	// AddJob validates the input, stamps postedDate/createdAt/updatedAt
	// and inserts a new Job, returning its hex identifier.
	AddJob(ctx context.Context, input domain.JobInput) (string, error)

	// AllJobs returns every Job ordered by sortBy in the given direction.
	AllJobs(ctx context.Context, sortBy string, order domain.SortOrder) ([]domain.Job, error)

	// LatestJobs returns up to limit Jobs, newest postedDate first.
	// A non-positive limit falls back to the default of 6.
	LatestJobs(ctx context.Context, limit int64) ([]domain.Job, error)

	// JobsByCategory returns Jobs with the exact category, newest first.
	JobsByCategory(ctx context.Context, category string) ([]domain.Job, error)

	// JobByID returns the Job with the given hex identifier.
	JobByID(ctx context.Context, id string) (domain.Job, error)

	// JobsByUser returns Jobs posted by the given email, newest first.
	JobsByUser(ctx context.Context, email string) ([]domain.Job, error)

	// UpdateJob applies fields to the Job after an ownership check,
	// stripping server-managed fields and restamping updatedAt.
	// It returns the number of modified documents.
	UpdateJob(ctx context.Context, id, requesterEmail string, fields map[string]any) (int64, error)

	// DeleteJob removes the Job after an ownership check and then
	// best-effort deletes every AcceptedJob referencing it.
	// It returns the number of deleted Jobs.
	DeleteJob(ctx context.Context, id, requesterEmail string) (int64, error)

	// AcceptJob records acceptorEmail accepting the Job, snapshotting
	// the job fields, and returns the new record's hex identifier.
	AcceptJob(ctx context.Context, jobID, acceptorEmail, acceptorName string) (string, error)

	// AcceptedJobsByUser returns AcceptedJobs for the accepting email,
	// newest acceptedDate first.
	AcceptedJobsByUser(ctx context.Context, email string) ([]domain.AcceptedJob, error)

	// RemoveAcceptedJob deletes the AcceptedJob only when both the
	// identifier and the accepting email match, returning the number of
	// deleted documents.
	RemoveAcceptedJob(ctx context.Context, id, requesterEmail string) (int64, error)

	// Stats returns marketplace-wide counters and the per-category job
	// grouping ordered by count descending.
	Stats(ctx context.Context) (domain.Stats, error)
}
