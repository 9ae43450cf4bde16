package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/domain"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/repository"
	pkgmongo "github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/pkg/mongodb"
)

// Ensure JobRepository implements repository.JobRepository
var _ repository.JobRepository = (*JobRepository)(nil)

const defaultLatestLimit = 6

// JobRepository implements repository.JobRepository with MongoDB.
// It holds no state beyond the two collection handles and is safe to
// share across concurrent requests. Ownership and dedup checks are
// read-then-write sequences without compare-and-swap; the races that
// allows are accepted, not guarded.
type JobRepository struct {
	jobs     *mongo.Collection
	accepted *mongo.Collection
	clock    func() time.Time
}

// NewJobRepository creates a JobRepository over the jobs and
// acceptedJobs collections
func NewJobRepository(client *pkgmongo.Client) *JobRepository {
	return &JobRepository{
		jobs:     client.Collection("jobs"),
		accepted: client.Collection("acceptedJobs"),
		clock:    time.Now,
	}
}

// EnsureIndexes creates the secondary indexes job queries rely on.
// Safe to call repeatedly; the store treats existing indexes as a no-op.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userEmail", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "postedDate", Value: -1}}},
	}

	if _, err := r.jobs.Indexes().CreateMany(ctx, models); err != nil {
		return &domain.StorageError{Op: "create job indexes", Err: err}
	}
	return nil
}

// AddJob validates the input, stamps the server-managed dates and inserts
func (r *JobRepository) AddJob(ctx context.Context, input domain.JobInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	now := r.clock().UTC()
	job := domain.Job{
		Title:      input.Title,
		PostedBy:   input.PostedBy,
		Category:   input.Category,
		Summary:    input.Summary,
		CoverImage: input.CoverImage,
		UserEmail:  input.UserEmail,
		PostedDate: now,
		CreatedAt:  now,
		UpdatedAt:  now,
		Extra:      input.Extra,
	}

	res, err := r.jobs.InsertOne(ctx, job)
	if err != nil {
		return "", &domain.StorageError{Op: "insert job", Err: err}
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", &domain.StorageError{Op: "insert job", Err: errors.New("store returned a non-ObjectID identifier")}
	}
	return oid.Hex(), nil
}

// AllJobs returns every job sorted by the given field and direction
func (r *JobRepository) AllJobs(ctx context.Context, sortBy string, order domain.SortOrder) ([]domain.Job, error) {
	if sortBy == "" {
		sortBy = "postedDate"
	}

	cur, err := r.jobs.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: sortBy, Value: int(order)}}))
	if err != nil {
		return nil, &domain.StorageError{Op: "find jobs", Err: err}
	}
	return decodeJobs(ctx, cur)
}

// LatestJobs returns up to limit jobs, newest postedDate first
func (r *JobRepository) LatestJobs(ctx context.Context, limit int64) ([]domain.Job, error) {
	if limit <= 0 {
		limit = defaultLatestLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "postedDate", Value: -1}}).
		SetLimit(limit)

	cur, err := r.jobs.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, &domain.StorageError{Op: "find latest jobs", Err: err}
	}
	return decodeJobs(ctx, cur)
}

// JobsByCategory returns jobs matching the category exactly, newest first
func (r *JobRepository) JobsByCategory(ctx context.Context, category string) ([]domain.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "postedDate", Value: -1}})

	cur, err := r.jobs.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, &domain.StorageError{Op: "find jobs by category", Err: err}
	}
	return decodeJobs(ctx, cur)
}

// JobByID loads a single job by its hex identifier
func (r *JobRepository) JobByID(ctx context.Context, id string) (domain.Job, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.Job{}, err
	}

	var job domain.Job
	if err := r.jobs.FindOne(ctx, bson.M{"_id": oid}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Job{}, domain.ErrNotFound
		}
		return domain.Job{}, &domain.StorageError{Op: "find job by id", Err: err}
	}
	return job, nil
}

// JobsByUser returns jobs posted by the given email, newest first
func (r *JobRepository) JobsByUser(ctx context.Context, email string) ([]domain.Job, error) {
	if email == "" {
		return nil, &domain.ValidationError{Missing: []string{"email"}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "postedDate", Value: -1}})

	cur, err := r.jobs.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, &domain.StorageError{Op: "find jobs by user", Err: err}
	}
	return decodeJobs(ctx, cur)
}

// UpdateJob applies fields to an owned job, stripping server-managed
// keys and restamping updatedAt. The job can disappear between the
// ownership read and the write; a zero match count reports not-found.
func (r *JobRepository) UpdateJob(ctx context.Context, id, requesterEmail string, fields map[string]any) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	existing, err := r.JobByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if existing.UserEmail != requesterEmail {
		return 0, domain.ErrUnauthorized
	}

	set := stripProtectedFields(fields)
	set["updatedAt"] = r.clock().UTC()

	res, err := r.jobs.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, &domain.StorageError{Op: "update job", Err: err}
	}
	if res.MatchedCount == 0 {
		return 0, domain.ErrNotFound
	}
	return res.ModifiedCount, nil
}

// DeleteJob removes an owned job, then cascades to its accepted-job
// records. The cascade is a second independent delete, not a
// transaction; a failure in between leaves orphaned records behind.
func (r *JobRepository) DeleteJob(ctx context.Context, id, requesterEmail string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	job, err := r.JobByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if job.UserEmail != requesterEmail {
		return 0, domain.ErrUnauthorized
	}

	res, err := r.jobs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, &domain.StorageError{Op: "delete job", Err: err}
	}

	if _, err := r.accepted.DeleteMany(ctx, bson.M{"jobId": id}); err != nil {
		return res.DeletedCount, &domain.StorageError{Op: "cascade delete accepted jobs", Err: err}
	}
	return res.DeletedCount, nil
}

// AcceptJob records a user accepting a job after the self-accept and
// duplicate checks pass, snapshotting the job fields as they are now.
func (r *JobRepository) AcceptJob(ctx context.Context, jobID, acceptorEmail, acceptorName string) (string, error) {
	if _, err := parseObjectID(jobID); err != nil {
		return "", err
	}

	job, err := r.JobByID(ctx, jobID)
	if err != nil {
		return "", err
	}
	if job.UserEmail == acceptorEmail {
		return "", domain.ErrSelfAccept
	}

	filter := bson.M{"jobId": jobID, "acceptedByEmail": acceptorEmail}
	err = r.accepted.FindOne(ctx, filter).Err()
	switch {
	case err == nil:
		return "", domain.ErrDuplicateAccept
	case !errors.Is(err, mongo.ErrNoDocuments):
		return "", &domain.StorageError{Op: "find accepted job", Err: err}
	}

	record := newAcceptedRecord(job, jobID, acceptorEmail, acceptorName, r.clock().UTC())

	res, err := r.accepted.InsertOne(ctx, record)
	if err != nil {
		return "", &domain.StorageError{Op: "insert accepted job", Err: err}
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", &domain.StorageError{Op: "insert accepted job", Err: errors.New("store returned a non-ObjectID identifier")}
	}
	return oid.Hex(), nil
}

// AcceptedJobsByUser returns a user's accepted jobs, newest first
func (r *JobRepository) AcceptedJobsByUser(ctx context.Context, email string) ([]domain.AcceptedJob, error) {
	if email == "" {
		return nil, &domain.ValidationError{Missing: []string{"email"}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "acceptedDate", Value: -1}})

	cur, err := r.accepted.Find(ctx, bson.M{"acceptedByEmail": email}, opts)
	if err != nil {
		return nil, &domain.StorageError{Op: "find accepted jobs", Err: err}
	}

	records := make([]domain.AcceptedJob, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, &domain.StorageError{Op: "decode accepted jobs", Err: err}
	}
	return records, nil
}

// RemoveAcceptedJob deletes an accepted job. Ownership is enforced
// inside the delete filter, so a wrong id and a wrong owner are
// indistinguishable to the caller.
func (r *JobRepository) RemoveAcceptedJob(ctx context.Context, id, requesterEmail string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.accepted.DeleteOne(ctx, bson.M{"_id": oid, "acceptedByEmail": requesterEmail})
	if err != nil {
		return 0, &domain.StorageError{Op: "delete accepted job", Err: err}
	}
	if res.DeletedCount == 0 {
		return 0, domain.ErrNotFoundOrUnauthorized
	}
	return res.DeletedCount, nil
}

// Stats returns total counts plus the per-category grouping, most
// populous categories first.
func (r *JobRepository) Stats(ctx context.Context) (domain.Stats, error) {
	totalJobs, err := r.jobs.CountDocuments(ctx, bson.D{})
	if err != nil {
		return domain.Stats{}, &domain.StorageError{Op: "count jobs", Err: err}
	}

	totalAccepted, err := r.accepted.CountDocuments(ctx, bson.D{})
	if err != nil {
		return domain.Stats{}, &domain.StorageError{Op: "count accepted jobs", Err: err}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cur, err := r.jobs.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.Stats{}, &domain.StorageError{Op: "aggregate category counts", Err: err}
	}

	counts := make([]domain.CategoryCount, 0)
	if err := cur.All(ctx, &counts); err != nil {
		return domain.Stats{}, &domain.StorageError{Op: "decode category counts", Err: err}
	}

	return domain.Stats{
		TotalJobs:         totalJobs,
		TotalAcceptedJobs: totalAccepted,
		CategoryCounts:    counts,
	}, nil
}

func decodeJobs(ctx context.Context, cur *mongo.Cursor) ([]domain.Job, error) {
	jobs := make([]domain.Job, 0)
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, &domain.StorageError{Op: "decode jobs", Err: err}
	}
	return jobs, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &domain.InvalidIDError{ID: id}
	}
	return oid, nil
}

// protectedUpdateFields may never be changed through UpdateJob.
var protectedUpdateFields = []string{"_id", "postedDate", "userEmail", "createdAt"}

// stripProtectedFields copies the update map without the immutable keys.
func stripProtectedFields(fields map[string]any) map[string]any {
	set := make(map[string]any, len(fields))
	for k, v := range fields {
		set[k] = v
	}
	for _, k := range protectedUpdateFields {
		delete(set, k)
	}
	return set
}

// newAcceptedRecord builds the denormalized acceptance snapshot.
func newAcceptedRecord(job domain.Job, jobID, email, name string, now time.Time) domain.AcceptedJob {
	return domain.AcceptedJob{
		JobID:           jobID,
		JobTitle:        job.Title,
		JobCategory:     job.Category,
		JobSummary:      job.Summary,
		JobCoverImage:   job.CoverImage,
		JobPostedBy:     job.PostedBy,
		JobOwnerEmail:   job.UserEmail,
		AcceptedByEmail: email,
		AcceptedByName:  name,
		AcceptedDate:    now,
		Status:          domain.StatusAccepted,
	}
}
