package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/viraj5503/portfolio-api/internal/catalog"
	"github.com/viraj5503/portfolio-api/internal/model"
)

func newPortfolioHandler(t *testing.T) *PortfolioHandler {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return NewPortfolioHandler(c)
}

func TestPortfolioHandler_Personal(t *testing.T) {
	h := newPortfolioHandler(t)

	req := httptest.NewRequest("GET", "/api/portfolio/personal", nil)
	rec := httptest.NewRecorder()
	h.Personal(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp model.PersonalInfo
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Name == "" {
		t.Error("expected a non-empty name")
	}
	if resp.Email == "" {
		t.Error("expected a non-empty email")
	}
}

func TestPortfolioHandler_Projects(t *testing.T) {
	h := newPortfolioHandler(t)

	req := httptest.NewRequest("GET", "/api/portfolio/projects", nil)
	rec := httptest.NewRecorder()
	h.Projects(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []model.Project
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) == 0 {
		t.Fatal("expected projects in response")
	}
}

func TestPortfolioHandler_Project_Found(t *testing.T) {
	h := newPortfolioHandler(t)

	req := httptest.NewRequest("GET", "/api/portfolio/projects/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Project(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp model.Project
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 1 {
		t.Errorf("expected project id 1, got %d", resp.ID)
	}
	if resp.Title == "" {
		t.Error("expected a non-empty title")
	}
}

func TestPortfolioHandler_Project_NotFound(t *testing.T) {
	h := newPortfolioHandler(t)

	req := httptest.NewRequest("GET", "/api/portfolio/projects/999", nil)
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()
	h.Project(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestPortfolioHandler_Project_InvalidID(t *testing.T) {
	h := newPortfolioHandler(t)

	req := httptest.NewRequest("GET", "/api/portfolio/projects/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.Project(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestPortfolioHandler_Achievements(t *testing.T) {
	h := newPortfolioHandler(t)

	req := httptest.NewRequest("GET", "/api/portfolio/achievements", nil)
	rec := httptest.NewRecorder()
	h.Achievements(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp["achievements"]) == 0 {
		t.Error("expected achievements wrapped in an achievements key")
	}
}

func TestPortfolioHandler_Skills(t *testing.T) {
	h := newPortfolioHandler(t)

	req := httptest.NewRequest("GET", "/api/portfolio/skills", nil)
	rec := httptest.NewRecorder()
	h.Skills(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp model.SkillsData
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.DataScience) == 0 || len(resp.Frameworks) == 0 {
		t.Error("expected populated skill groups")
	}
}
