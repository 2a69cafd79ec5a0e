package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/viraj5503/portfolio-api/internal/model"
	"github.com/viraj5503/portfolio-api/internal/repository"
	"github.com/viraj5503/portfolio-api/internal/service"
)

// memSubmissionRepository backs the end-to-end flow tests with the same
// ordering contract as the Postgres implementation: submitted_at descending,
// insertion order on ties.
type memSubmissionRepository struct {
	mu   sync.Mutex
	subs []*model.ContactSubmission
}

func (r *memSubmissionRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *sub
	r.subs = append(r.subs, &cp)
	return nil
}

func (r *memSubmissionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subs {
		if s.ID == id {
			s.Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memSubmissionRepository) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.ContactSubmission, len(r.subs))
	copy(out, r.subs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, sub *model.ContactSubmission) {}

func newContactMux(repo repository.SubmissionRepository) (*http.ServeMux, service.SubmissionService) {
	svc := service.NewSubmissionService(repo)
	h := NewContactHandler(svc, noopNotifier{})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/contact", h.Submit)
	mux.HandleFunc("GET /api/contact/submissions", h.List)
	mux.HandleFunc("PUT /api/contact/submissions/{id}/status", h.UpdateStatus)
	return mux, svc
}

func TestContactFlow_SubmitThenList(t *testing.T) {
	mux, _ := newContactMux(&memSubmissionRepository{})

	body := `{"name":"John Smith","email":"john@example.com","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var submitted submitResponse
	if err := json.NewDecoder(rec.Body).Decode(&submitted); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !submitted.Success || submitted.Message == "" || submitted.SubmissionID == "" {
		t.Fatalf("unexpected submit response: %+v", submitted)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/contact/submissions?limit=1", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listed []*model.ContactSubmission
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected exactly one submission, got %d", len(listed))
	}
	got := listed[0]
	if got.ID != submitted.SubmissionID {
		t.Errorf("expected id %q, got %q", submitted.SubmissionID, got.ID)
	}
	if got.Status != model.StatusNew {
		t.Errorf("expected status=new, got %q", got.Status)
	}
	if got.Name != "John Smith" || got.Email != "john@example.com" {
		t.Errorf("unexpected submission fields: %+v", got)
	}
}

func TestContactFlow_ListMostRecentFirst(t *testing.T) {
	mux, svc := newContactMux(&memSubmissionRepository{})

	ctx := context.Background()
	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		sub, err := svc.Create(ctx, name, strings.ToLower(name)+"@example.com", "s", "m")
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		ids = append(ids, sub.ID)
		time.Sleep(2 * time.Millisecond) // strictly increasing submitted_at
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact/submissions?limit=2", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var listed []*model.ContactSubmission
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(listed))
	}
	if listed[0].ID != ids[2] || listed[1].ID != ids[1] {
		t.Errorf("expected [C, B] order, got [%s, %s]", listed[0].Name, listed[1].Name)
	}
}

func TestContactFlow_UpdateStatus(t *testing.T) {
	mux, svc := newContactMux(&memSubmissionRepository{})

	sub, err := svc.Create(context.Background(), "John", "john@example.com", "Hi", "Hello")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut,
		"/api/contact/submissions/"+sub.ID+"/status?status=read", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	subs, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if subs[0].Status != "read" {
		t.Errorf("expected status=read after update, got %q", subs[0].Status)
	}
}

func TestContactFlow_UpdateStatus_UnknownID(t *testing.T) {
	mux, _ := newContactMux(&memSubmissionRepository{})

	req := httptest.NewRequest(http.MethodPut,
		"/api/contact/submissions/no-such-id/status?status=read", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
