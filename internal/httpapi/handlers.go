package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/domain"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Freelance Marketplace API is running!",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"jobs":         "/api/jobs",
			"latestJobs":   "/api/jobs/latest",
			"myJobs":       "/api/jobs/my-jobs/:email",
			"acceptJob":    "/api/jobs/accept",
			"acceptedJobs": "/api/jobs/accepted/:email",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startedAt).Seconds(),
	})
}

func (s *Server) handleLatestJobs(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}

	jobs, err := s.repo.LatestJobs(r.Context(), limit)
	if err != nil {
		s.fail(w, err, "failed to fetch latest jobs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(jobs),
		"data":    jobs,
	})
}

func (s *Server) handleAllJobs(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sortBy")
	order := domain.ParseSortOrder(r.URL.Query().Get("sortOrder"))

	jobs, err := s.repo.AllJobs(r.Context(), sortBy, order)
	if err != nil {
		s.fail(w, err, "failed to fetch jobs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(jobs),
		"data":    jobs,
	})
}

func (s *Server) handleJobsByCategory(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.repo.JobsByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		s.fail(w, err, "failed to fetch jobs by category")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(jobs),
		"data":    jobs,
	})
}

func (s *Server) handleJobsByUser(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.repo.JobsByUser(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		s.fail(w, err, "failed to fetch user jobs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(jobs),
		"data":    jobs,
	})
}

func (s *Server) handleJobByID(w http.ResponseWriter, r *http.Request) {
	job, err := s.repo.JobByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err, "failed to fetch job")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    job,
	})
}

func (s *Server) handleAddJob(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	id, err := s.repo.AddJob(r.Context(), domain.JobInputFromMap(body))
	if err != nil {
		s.fail(w, err, "failed to add job")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "job added successfully",
		"data":    map[string]any{"insertedId": id},
	})
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	email, _ := body["userEmail"].(string)
	if email == "" {
		badRequest(w, "user email is required for authorization")
		return
	}
	delete(body, "userEmail")

	modified, err := s.repo.UpdateJob(r.Context(), chi.URLParam(r, "id"), email, body)
	if err != nil {
		s.fail(w, err, "failed to update job")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "job updated successfully",
		"data":    map[string]any{"modifiedCount": modified},
	})
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserEmail string `json:"userEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserEmail == "" {
		badRequest(w, "user email is required for authorization")
		return
	}

	deleted, err := s.repo.DeleteJob(r.Context(), chi.URLParam(r, "id"), body.UserEmail)
	if err != nil {
		s.fail(w, err, "failed to delete job")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "job deleted successfully",
		"data":    map[string]any{"deletedCount": deleted},
	})
}

func (s *Server) handleAcceptJob(w http.ResponseWriter, r *http.Request) {
	var body struct {
		JobID     string `json:"jobId"`
		UserEmail string `json:"userEmail"`
		UserName  string `json:"userName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if body.JobID == "" || body.UserEmail == "" || body.UserName == "" {
		badRequest(w, "jobId, userEmail, and userName are required")
		return
	}

	id, err := s.repo.AcceptJob(r.Context(), body.JobID, body.UserEmail, body.UserName)
	if err != nil {
		s.fail(w, err, "failed to accept job")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "job accepted successfully",
		"data":    map[string]any{"insertedId": id},
	})
}

func (s *Server) handleAcceptedJobsByUser(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.AcceptedJobsByUser(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		s.fail(w, err, "failed to fetch accepted jobs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(records),
		"data":    records,
	})
}

func (s *Server) handleRemoveAcceptedJob(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserEmail string `json:"userEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserEmail == "" {
		badRequest(w, "user email is required for authorization")
		return
	}

	deleted, err := s.repo.RemoveAcceptedJob(r.Context(), chi.URLParam(r, "id"), body.UserEmail)
	if err != nil {
		s.fail(w, err, "failed to remove accepted job")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "accepted job removed successfully",
		"data":    map[string]any{"deletedCount": deleted},
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.repo.Stats(r.Context())
	if err != nil {
		s.fail(w, err, "failed to fetch statistics")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    stats,
	})
}
