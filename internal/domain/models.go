package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusAccepted is the status stamped on every AcceptedJob at creation.
// The record has no other modeled states: it either exists with this
// status or has been removed.
const StatusAccepted = "accepted"

// Job is a posted work listing owned by its creator's UserEmail.
// UserEmail, PostedDate and CreatedAt are immutable after creation.
// Extra carries caller-supplied fields outside the fixed schema; they
// are persisted inline as top-level document fields.
type Job struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	PostedBy   string             `bson:"postedBy" json:"postedBy"`
	Category   string             `bson:"category" json:"category"`
	Summary    string             `bson:"summary" json:"summary"`
	CoverImage string             `bson:"coverImage" json:"coverImage"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	PostedDate time.Time          `bson:"postedDate" json:"postedDate"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
	Extra      map[string]any     `bson:",inline" json:"extra,omitempty"`
}

// AcceptedJob links one accepting user to one Job. The job* fields are
// a point-in-time snapshot taken at acceptance; they are never
// refreshed if the source Job changes later. JobID holds the raw hex
// identifier of the parent Job, not a driver ObjectID.
type AcceptedJob struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	JobID           string             `bson:"jobId" json:"jobId"`
	JobTitle        string             `bson:"jobTitle" json:"jobTitle"`
	JobCategory     string             `bson:"jobCategory" json:"jobCategory"`
	JobSummary      string             `bson:"jobSummary" json:"jobSummary"`
	JobCoverImage   string             `bson:"jobCoverImage" json:"jobCoverImage"`
	JobPostedBy     string             `bson:"jobPostedBy" json:"jobPostedBy"`
	JobOwnerEmail   string             `bson:"jobOwnerEmail" json:"jobOwnerEmail"`
	AcceptedByEmail string             `bson:"acceptedByEmail" json:"acceptedByEmail"`
	AcceptedByName  string             `bson:"acceptedByName" json:"acceptedByName"`
	AcceptedDate    time.Time          `bson:"acceptedDate" json:"acceptedDate"`
	Status          string             `bson:"status" json:"status"`
}

// CategoryCount is one bucket of the per-category job grouping.
type CategoryCount struct {
	Category string `bson:"_id" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

// Stats aggregates marketplace-wide counters.
type Stats struct {
	TotalJobs         int64           `json:"totalJobs"`
	TotalAcceptedJobs int64           `json:"totalAcceptedJobs"`
	CategoryCounts    []CategoryCount `json:"categoryCounts"`
}

// SortOrder is a sort direction in store notation: 1 ascending, -1 descending.
type SortOrder int

const (
	SortAsc  SortOrder = 1
	SortDesc SortOrder = -1
)

// ParseSortOrder maps the query-string value to a SortOrder.
// Anything other than "asc" sorts descending.
func ParseSortOrder(s string) SortOrder {
	if s == "asc" {
		return SortAsc
	}
	return SortDesc
}
