package analyses

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/ats"
	"jobportal-backend/internal/profiles"
	"jobportal-backend/internal/shared/server/middleware"
	"jobportal-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

type analyzeRequest struct {
	JobDescription string `json:"jobDescription"`
	ResumeID       string `json:"resumeId"`
}

type historyItem struct {
	ID             string `json:"id"`
	ResumeID       string `json:"resumeId"`
	JobDescription string `json:"jobDescription"`
	OverallScore   int    `json:"overallScore"`
	CreatedAt      string `json:"createdAt"`
}

// RegisterRoutes attaches routes that need an authenticated, non-guest caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobseeker/ats/analyze", h.analyze)
	rg.GET("/jobseeker/ats/history", h.listHistory)
}

// RegisterPublicRoutes attaches routes that need no identity.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobseeker/ats/tips", h.tips)
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", []map[string]string{
			{"field": "body", "issue": "malformed_json"},
		})
		return
	}

	userID := middleware.UserIDFromContext(c)
	result, err := h.Svc.Analyze(c.Request.Context(), userID, req.JobDescription, req.ResumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), []map[string]string{
				{"field": "jobDescription", "issue": "too_long"},
			})
		case errors.Is(err, profiles.ErrProfileNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job seeker profile not found", nil)
		case errors.Is(err, profiles.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "No resume found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to analyze resume", nil)
		}
		return
	}

	c.Set("overallScore", result.Scores.OverallScore)
	respond.OK(c, gin.H{
		"success":  true,
		"analysis": result,
	})
}

func (h *Handler) listHistory(c *gin.Context) {
	limit := queryInt(c, "limit", defaultHistoryLimit)
	offset := queryInt(c, "offset", 0)

	records, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	items := make([]historyItem, 0, len(records))
	for _, rec := range records {
		items = append(items, historyItem{
			ID:             rec.ID.String(),
			ResumeID:       rec.ResumeID,
			JobDescription: rec.JobDescription,
			OverallScore:   rec.OverallScore,
			CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	respond.OK(c, gin.H{
		"success": true,
		"history": items,
	})
}

func (h *Handler) tips(c *gin.Context) {
	respond.OK(c, gin.H{
		"success": true,
		"tips":    ats.Tips(),
	})
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return parsed
}
