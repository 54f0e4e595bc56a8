package api

import (
	"encoding/base64"
	"net/http"
	"strings"

	"fixitplus-be/internal/issue"
	"fixitplus-be/internal/middleware"
)

// issueView decorates an issue with its display-time resolution estimate.
type issueView struct {
	*issue.Issue
	EstimatedResolution string `json:"estimatedResolution"`
}

func viewOf(i *issue.Issue) issueView {
	return issueView{
		Issue:               i,
		EstimatedResolution: issue.EstimateResolution(i.LocationClass, i.Status),
	}
}

func viewsOf(issues []*issue.Issue) []issueView {
	views := make([]issueView, 0, len(issues))
	for _, i := range issues {
		views = append(views, viewOf(i))
	}
	return views
}

func (s *Server) handleListIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := s.issueSvc.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, viewsOf(issues))
}

func (s *Server) handleMyIssues(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	issues, err := s.issueSvc.ListByReporter(r.Context(), id.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, viewsOf(issues))
}

type createIssueRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	LocationClass string  `json:"locationType"`
	Category      string  `json:"category"`
	Subcategory   *string `json:"subcategory,omitempty"`
	ImageURL      string  `json:"imageUrl"`
}

func (s *Server) handleCreateIssue(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var req createIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, errBadRequestBody)
		return
	}

	i, err := s.issueSvc.Create(r.Context(), issue.CreateIssueParams{
		ReporterID:    id.UserID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		LocationClass: issue.LocationClass(req.LocationClass),
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, viewOf(i))
}

type updateIssueRequest struct {
	Status           *string `json:"status,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	RepairedImageURL *string `json:"repairedImageUrl,omitempty"`
}

func (s *Server) handleUpdateIssue(w http.ResponseWriter, r *http.Request) {
	var req updateIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, errBadRequestBody)
		return
	}

	params := issue.UpdateIssueParams{
		Notes:            req.Notes,
		RepairedImageURL: req.RepairedImageURL,
	}
	if req.Status != nil {
		st := issue.Status(*req.Status)
		params.Status = &st
	}

	i, err := s.issueSvc.Update(r.Context(), r.PathValue("id"), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, viewOf(i))
}

type categorizeRequest struct {
	Image string `json:"image"`
}

// handleCategorize suggests a category for a base64-encoded photo. The
// suggestion never fails: on any decoding or classifier trouble the
// fallback category comes back instead.
func (s *Server) handleCategorize(w http.ResponseWriter, r *http.Request) {
	var req categorizeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, errBadRequestBody)
		return
	}

	// Browsers send data URLs; keep only the payload.
	payload := req.Image
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		s.writeError(w, r, errBadRequestBody)
		return
	}

	category := s.suggester.Suggest(r.Context(), image)
	s.writeJSON(w, http.StatusOK, map[string]string{"category": category})
}
