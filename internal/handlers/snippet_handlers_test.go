package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"codeleap/internal/localstore"
	"codeleap/internal/models"
	"codeleap/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Anonymous requests exercise the local persistence path end to end, so no
// database connection is needed.
func newLocalServer(t *testing.T) *Server {
	t.Helper()
	local := localstore.Open(filepath.Join(t.TempDir(), "local.json"))
	return NewServer(nil, local, utils.NewMetricsCollector())
}

func saveSnippet(t *testing.T, server *Server, name, language, code string) models.Snippet {
	t.Helper()

	body := `{"name":"` + name + `","language":"` + language + `","code":"` + code + `"}`
	req := httptest.NewRequest(http.MethodPost, "/snippets", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.HandleSnippets()(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var saved models.Snippet
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&saved))
	return saved
}

func listSnippets(t *testing.T, server *Server) []models.Snippet {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/snippets", nil)
	rec := httptest.NewRecorder()
	server.HandleSnippets()(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var snippets []models.Snippet
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snippets))
	return snippets
}

func TestAnonymousSnippetsNewestFirst(t *testing.T) {
	server := newLocalServer(t)

	a := saveSnippet(t, server, "a", "javascript", "1")
	b := saveSnippet(t, server, "b", "javascript", "2")

	snippets := listSnippets(t, server)
	require.Len(t, snippets, 2)
	assert.Equal(t, b.ID, snippets[0].ID)
	assert.Equal(t, a.ID, snippets[1].ID)
}

func TestAnonymousSnippetDeleteIdempotent(t *testing.T) {
	server := newLocalServer(t)
	a := saveSnippet(t, server, "a", "go", "1")

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/snippets?id="+a.ID, nil)
		rec := httptest.NewRecorder()
		server.HandleSnippets()(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.Empty(t, listSnippets(t, server))
}

func TestSaveSnippetValidation(t *testing.T) {
	server := newLocalServer(t)

	req := httptest.NewRequest(http.MethodPost, "/snippets", strings.NewReader(`{"code":"1"}`))
	rec := httptest.NewRecorder()
	server.HandleSnippets()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnonymousChallengeProgress(t *testing.T) {
	server := newLocalServer(t)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/challenges", strings.NewReader(`{"challengeId":"ch1"}`))
		rec := httptest.NewRecorder()
		server.HandleChallenges()(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/challenges", nil)
	rec := httptest.NewRecorder()
	server.HandleChallenges()(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"ch1"}, resp["completed"])
}

func TestRunHistoryEndpoint(t *testing.T) {
	server := newLocalServer(t)

	body := `{"language":"go","code":"fmt.Println(1)","result":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.HandleRunHistory()(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/history?language=go", nil)
	rec = httptest.NewRecorder()
	server.HandleRunHistory()(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.RunHistoryEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].Result)
}
