package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
)

// newTestServer serves the subset of the API the client uses.
// Enterprise URLs get an /api/v3/ prefix.
func newTestServer(t *testing.T, token string) (*httptest.Server, *[]map[string]any) {
	t.Helper()
	var created []map[string]any
	mux := http.NewServeMux()

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
			return false
		}
		return true
	}

	mux.HandleFunc("GET /api/v3/user", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		_, _ = w.Write([]byte(`{"login":"octocat"}`))
	})
	mux.HandleFunc("GET /api/v3/repos/octo/hello", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		_, _ = w.Write([]byte(`{"name":"hello","full_name":"octo/hello"}`))
	})
	mux.HandleFunc("POST /api/v3/repos/octo/hello/issues", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		created = append(created, body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"number":17}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &created
}

func connect(t *testing.T, srv *httptest.Server, token string) (domain.IssueTracker, error) {
	t.Helper()
	return NewConnector(srv.URL+"/", nil).WithHTTPClient(srv.Client()).Connect(context.Background(), token)
}

func TestConnector_Connect(t *testing.T) {
	srv, _ := newTestServer(t, "good")

	tracker, err := connect(t, srv, "good")
	require.NoError(t, err)
	assert.Equal(t, "octocat", tracker.(*Client).Login())
}

func TestConnector_Connect_BadToken(t *testing.T) {
	srv, _ := newTestServer(t, "good")

	tracker, err := connect(t, srv, "bad")
	assert.Error(t, err)
	assert.Nil(t, tracker)
}

func TestConnector_Connect_EmptyToken(t *testing.T) {
	_, err := NewConnector("", nil).Connect(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyToken)
}

func TestClient_VerifyRepository(t *testing.T) {
	srv, _ := newTestServer(t, "good")
	tracker, err := connect(t, srv, "good")
	require.NoError(t, err)

	assert.NoError(t, tracker.VerifyRepository(context.Background(), "octo", "hello"))
	assert.Error(t, tracker.VerifyRepository(context.Background(), "octo", "missing"))
}

func TestClient_CreateIssue(t *testing.T) {
	srv, created := newTestServer(t, "good")
	tracker, err := connect(t, srv, "good")
	require.NoError(t, err)

	number, err := tracker.CreateIssue(context.Background(), "octo", "hello", "Write release notes", "details")
	require.NoError(t, err)
	assert.Equal(t, 17, number)
	require.Len(t, *created, 1)
	assert.Equal(t, "Write release notes", (*created)[0]["title"])
	assert.Equal(t, "details", (*created)[0]["body"])
}

func TestClient_CreateIssue_EmptyBodyOmitted(t *testing.T) {
	srv, created := newTestServer(t, "good")
	tracker, err := connect(t, srv, "good")
	require.NoError(t, err)

	_, err = tracker.CreateIssue(context.Background(), "octo", "hello", "No body", "")
	require.NoError(t, err)
	_, hasBody := (*created)[0]["body"]
	assert.False(t, hasBody)
}

func TestClient_CreateIssue_Failure(t *testing.T) {
	srv, _ := newTestServer(t, "good")
	tracker, err := connect(t, srv, "good")
	require.NoError(t, err)

	_, err = tracker.CreateIssue(context.Background(), "octo", "missing", "t", "")
	assert.Error(t, err)
}
