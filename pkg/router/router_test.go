package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/sweetshop/pkg/router"
)

func ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutesAndURL(t *testing.T) {
	r := router.New()
	r.Get("/sweets/{id}", "sweets.show", ping)

	url, err := r.URL("sweets.show", map[string]string{"id": "7"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/sweets/7" {
		t.Errorf("URL = %q, want /sweets/7", url)
	}

	if _, err := r.URL("sweets.show", nil); err == nil {
		t.Error("expected error for missing params")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route name")
	}
}

func TestGroupPrefixAndMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", mw("outer"))
	admin := api.Group("/admin", mw("inner"))
	admin.Get("/ping", "admin.ping", ping)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/a", "a", ping)
	r.Post("/b", "b", ping)
	r.HandleFunc("/metrics", ping) // unnamed, still mounted

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("Routes() len = %d, want 2 named", len(infos))
	}
}

func TestMethodNotMatched(t *testing.T) {
	r := router.New()
	r.Get("/only-get", "only.get", ping)

	req := httptest.NewRequest(http.MethodPost, "/only-get", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
