package mongo

import (
	"errors"
	"testing"
	"time"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/domain"
)

func TestStripProtectedFields(t *testing.T) {
	fields := map[string]any{
		"title":      "New title",
		"summary":    "New summary",
		"_id":        "665f1f77bcf86cd799439011",
		"postedDate": "2020-01-01",
		"userEmail":  "attacker@example.com",
		"createdAt":  "2020-01-01",
	}

	set := stripProtectedFields(fields)

	for _, k := range []string{"_id", "postedDate", "userEmail", "createdAt"} {
		if _, ok := set[k]; ok {
			t.Errorf("protected field %q survived stripping", k)
		}
	}
	if set["title"] != "New title" || set["summary"] != "New summary" {
		t.Errorf("allowed fields were lost: %v", set)
	}

	// the caller's map must not be mutated
	if _, ok := fields["userEmail"]; !ok {
		t.Error("stripProtectedFields mutated its input map")
	}
}

func TestNewAcceptedRecord(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	job := domain.Job{
		Title:      "Logo design",
		Category:   "graphics-design",
		Summary:    "Minimal logo for a bakery",
		CoverImage: "https://example.com/logo.png",
		PostedBy:   "Dana Owner",
		UserEmail:  "owner@example.com",
	}

	rec := newAcceptedRecord(job, "665f1f77bcf86cd799439011", "worker@example.com", "Sam Worker", now)

	if rec.JobID != "665f1f77bcf86cd799439011" {
		t.Errorf("JobID = %q", rec.JobID)
	}
	if rec.JobTitle != job.Title || rec.JobCategory != job.Category ||
		rec.JobSummary != job.Summary || rec.JobCoverImage != job.CoverImage ||
		rec.JobPostedBy != job.PostedBy || rec.JobOwnerEmail != job.UserEmail {
		t.Errorf("snapshot fields do not mirror the job: %+v", rec)
	}
	if rec.AcceptedByEmail != "worker@example.com" || rec.AcceptedByName != "Sam Worker" {
		t.Errorf("acceptor fields wrong: %+v", rec)
	}
	if !rec.AcceptedDate.Equal(now) {
		t.Errorf("AcceptedDate = %v, want %v", rec.AcceptedDate, now)
	}
	if rec.Status != domain.StatusAccepted {
		t.Errorf("Status = %q, want %q", rec.Status, domain.StatusAccepted)
	}
	if !rec.ID.IsZero() {
		t.Errorf("ID should be unset before insert, got %v", rec.ID)
	}
}

func TestParseObjectID(t *testing.T) {
	if _, err := parseObjectID("665f1f77bcf86cd799439011"); err != nil {
		t.Errorf("parseObjectID(valid) returned %v", err)
	}

	for _, bad := range []string{"", "nope", "665f1f77bcf86cd79943901"} {
		_, err := parseObjectID(bad)
		var ide *domain.InvalidIDError
		if !errors.As(err, &ide) {
			t.Errorf("parseObjectID(%q) = %v, want *InvalidIDError", bad, err)
		}
	}
}
