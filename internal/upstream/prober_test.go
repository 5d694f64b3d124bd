package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edusync_gateway/internal/config"
	"edusync_gateway/internal/model"
	"edusync_gateway/pkg/logger"

	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(&config.UpstreamConfig{BaseURL: srv.URL})
	return client, srv
}

func TestProberFirstSuccessWins(t *testing.T) {
	hits := map[string]int{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits[r.URL.Path]++
		// Only the second candidate shape exists on this deployment.
		if r.URL.Path == "/api/Course" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":"c1","title":"Go Basics","instructorName":"jdoe"}]`))
			return
		}
		http.NotFound(w, r)
	}))

	courses, err := client.ListCourses(context.Background(), "tok")
	if err != nil {
		t.Fatal(err)
	}
	if len(courses) != 1 || courses[0].ID != "c1" {
		t.Fatalf("courses = %+v", courses)
	}
	if hits["/api/Courses"] != 1 || hits["/api/Course"] != 1 {
		t.Fatalf("probe order wrong: %v", hits)
	}
	// Later shapes must not have been tried after the success.
	if hits["/api/Courses/GetAll"] != 0 {
		t.Fatalf("kept probing after a success: %v", hits)
	}
}

func TestProberCachesResolvedEndpoint(t *testing.T) {
	hits := map[string]int{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits[r.URL.Path]++
		if r.URL.Path == "/api/Course" {
			w.Write([]byte(`[]`))
			return
		}
		http.NotFound(w, r)
	}))

	for i := 0; i < 3; i++ {
		if _, err := client.ListCourses(context.Background(), "tok"); err != nil {
			t.Fatal(err)
		}
	}

	// The failing first shape is probed once; after resolution the winner
	// is contacted directly.
	if hits["/api/Courses"] != 1 {
		t.Errorf("first candidate probed %d times, want 1", hits["/api/Courses"])
	}
	if hits["/api/Course"] != 3 {
		t.Errorf("winner hit %d times, want 3", hits["/api/Course"])
	}

	if path, ok := client.prober.Resolved(OpListCourses); !ok || path != "/api/Course" {
		t.Errorf("Resolved = %q, %v", path, ok)
	}
}

func TestProberAllCandidatesFail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.ListCourses(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error")
	}
	pe, ok := err.(*ProbeError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if len(pe.Attempts) != len(defaultCandidates[OpListCourses]) {
		t.Errorf("attempts = %d, want %d", len(pe.Attempts), len(defaultCandidates[OpListCourses]))
	}
	// The message names the last failure, which callers surface verbatim.
	if !strings.Contains(err.Error(), "no working endpoint for list_courses") {
		t.Errorf("message = %q", err.Error())
	}
	if !strings.Contains(err.Error(), "/api/Course/GetAll") {
		t.Errorf("message does not name the last failure: %q", err.Error())
	}
}

func TestProberConfigOverrides(t *testing.T) {
	srvHits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srvHits++
		if r.URL.Path == "/custom/courses" {
			w.Write([]byte(`[]`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(&config.UpstreamConfig{
		BaseURL: srv.URL,
		Candidates: map[string][]string{
			string(OpListCourses): {"/custom/courses"},
		},
	})
	if _, err := client.ListCourses(context.Background(), "tok"); err != nil {
		t.Fatal(err)
	}
	if srvHits != 1 {
		t.Errorf("hits = %d, want 1", srvHits)
	}
}

func TestBearerTokenForwarded(t *testing.T) {
	var got string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	if _, err := client.ListCourses(context.Background(), "secret-token"); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer secret-token" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestSubmitResultEmptyBodySuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	echoed, err := client.SubmitResult(context.Background(), "tok", model.Result{AssessmentID: "a1", UserID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	if echoed != nil {
		t.Errorf("echoed = %+v, want nil for empty body", echoed)
	}
}
