package restaurant

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"likeat/internal/core"
	"likeat/internal/middleware"
)

func setupRestaurantTestRouter(f *fixture, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(f.service)

	withUser := func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextUserID, userID)
		}
		c.Next()
	}

	r.GET("/restaurants", handler.ListApproved)
	r.GET("/restaurants/me", withUser, handler.ListMyRestaurants)
	r.GET("/admin/restaurants", handler.ListByStatus)
	r.GET("/admin/clients/:id/restaurants", handler.ListClientRestaurants)

	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_ListApproved(t *testing.T) {
	f := newFixture()
	w := get(setupRestaurantTestRouter(f, ""), "/restaurants?q=sol")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var page Page
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Total != 1 || page.Items[0].Name != "Cafe Sol" {
		t.Errorf("expected Cafe Sol only, got %+v", page.Items)
	}
}

func TestHandler_ViewFieldNames(t *testing.T) {
	f := newFixture()
	w := get(setupRestaurantTestRouter(f, f.owner.ID), "/restaurants/me")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var views []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}

	for _, key := range []string{
		"id", "mainPhoto", "additionalPhotos", "name", "location", "style",
		"cuisine", "address", "cost", "overallRating", "totalReviews",
		"information", "phone", "openingHours", "reviews", "clientName", "status",
	} {
		if _, ok := views[0][key]; !ok {
			t.Errorf("view is missing field %q", key)
		}
	}
}

func TestHandler_ListApproved_HugePage(t *testing.T) {
	f := newFixture()
	w := get(setupRestaurantTestRouter(f, ""), "/restaurants?page=100000000000000001&limit=100")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var page Page
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("expected empty page, got %d items", len(page.Items))
	}
}

func TestHandler_ListMyRestaurants_Unauthorized(t *testing.T) {
	f := newFixture()
	w := get(setupRestaurantTestRouter(f, ""), "/restaurants/me")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestHandler_ListByStatus(t *testing.T) {
	f := newFixture()
	r := setupRestaurantTestRouter(f, "")

	if w := get(r, "/admin/restaurants?status=PENDING"); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w := get(r, "/admin/restaurants?status=closed"); w.Code != http.StatusBadRequest {
		t.Errorf("unknown status: expected 400, got %d", w.Code)
	}
	if w := get(r, "/admin/restaurants"); w.Code != http.StatusBadRequest {
		t.Errorf("missing status: expected 400, got %d", w.Code)
	}
	if w := get(r, "/admin/restaurants?status=approved&limit=500"); w.Code != http.StatusBadRequest {
		t.Errorf("oversized limit: expected 400, got %d", w.Code)
	}
	if w := get(r, "/admin/restaurants?status=approved&page=abc"); w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric page: expected 400, got %d", w.Code)
	}
}

func TestHandler_ListClientRestaurants(t *testing.T) {
	f := newFixture()
	r := setupRestaurantTestRouter(f, "")

	w := get(r, "/admin/clients/"+f.other.ID+"/restaurants")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var views []RestaurantView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 1 || views[0].ClientName != "Nikos" {
		t.Errorf("unexpected views: %+v", views)
	}

	if w := get(r, "/admin/clients/"+uuid.NewString()+"/restaurants"); w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("unknown client: expected 200 [], got %d %s", w.Code, w.Body.String())
	}

	w = get(r, "/admin/clients/owner-123/restaurants")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: expected 400, got %d", w.Code)
	}
	var body middleware.BadRequestErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Details) != 1 || body.Details[0].Type != "uuid" {
		t.Errorf("expected uuid validation detail, got %+v", body)
	}
}

func TestHandler_StoreUnavailable(t *testing.T) {
	f := newFixture()
	f.repo.err = core.Unavailable("find restaurants by status", errors.New("connection refused"))

	w := get(setupRestaurantTestRouter(f, ""), "/restaurants")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}
