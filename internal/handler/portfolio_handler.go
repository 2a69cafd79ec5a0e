package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/viraj5503/portfolio-api/internal/catalog"
)

// PortfolioHandler serves the static portfolio content. Every endpoint is a
// plain read of the immutable catalog; only the single-project lookup can
// miss.
type PortfolioHandler struct {
	catalog *catalog.Catalog
}

// NewPortfolioHandler creates a PortfolioHandler over the given catalog.
func NewPortfolioHandler(c *catalog.Catalog) *PortfolioHandler {
	return &PortfolioHandler{catalog: c}
}

// Personal handles GET /api/portfolio/personal.
func (h *PortfolioHandler) Personal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Personal())
}

// About handles GET /api/portfolio/about.
func (h *PortfolioHandler) About(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.About())
}

// Projects handles GET /api/portfolio/projects.
func (h *PortfolioHandler) Projects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Projects())
}

// Project handles GET /api/portfolio/projects/{id}.
func (h *PortfolioHandler) Project(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid_id")
		return
	}

	p, err := h.catalog.ProjectByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "not_found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// Skills handles GET /api/portfolio/skills.
func (h *PortfolioHandler) Skills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Skills())
}

// Education handles GET /api/portfolio/education.
func (h *PortfolioHandler) Education(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Education())
}

// Certifications handles GET /api/portfolio/certifications.
func (h *PortfolioHandler) Certifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Certifications())
}

// Experience handles GET /api/portfolio/experience.
func (h *PortfolioHandler) Experience(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Experience())
}

// Languages handles GET /api/portfolio/languages.
func (h *PortfolioHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Languages())
}

// Achievements handles GET /api/portfolio/achievements.
func (h *PortfolioHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"achievements": h.catalog.Achievements(),
	})
}
