package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"librarydesk/internal/infrastructure/screenshots"
	"librarydesk/internal/infrastructure/storage/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestServer(t *testing.T) (*httptest.Server, *screenshots.Dir) {
	t.Helper()

	dir := t.TempDir()
	store, err := jsonfile.New(filepath.Join(dir, "catalog.json"), slog.Default())
	require.NoError(t, err)
	shots, err := screenshots.New(filepath.Join(dir, "screenshots"))
	require.NoError(t, err)

	srv := httptest.NewServer(New(store, shots, slog.Default()))
	t.Cleanup(srv.Close)
	return srv, shots
}

func TestRoutes_MediaList(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/media")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Len(t, items, 4)
	assert.Equal(t, "The Martian", items[0]["name"])
}

func TestRoutes_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_CreateAndFetch(t *testing.T) {
	srv, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"name":"Solaris","author":"Stanislaw Lem","publication_date":"1961-06-01","category":"Book"}`)
	resp, err := http.Post(srv.URL+"/media", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 6, created.ID)

	resp2, err := http.Get(srv.URL + "/media/6")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestRoutes_CreateMissingFields(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/media", "application/json", bytes.NewBufferString(`{"name":"Solaris"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoutes_Index(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestRoutes_Screenshot(t *testing.T) {
	srv, shots := newTestServer(t)

	stored, err := shots.Save(1, "cover.png", bytes.NewBufferString("fake image bytes"))
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/screenshot/" + filepath.Base(stored))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(raw))

	missing, err := http.Get(srv.URL + "/screenshot/missing.png")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

// Registers every handler family on one mux and drives the favorites
// endpoints; both message-carrying families must coexist in the shared
// schema registry.
func TestRoutes_Favorites(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/favorites/add/1", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var added struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&added))
	assert.Equal(t, "Media item 1 added to favorites", added.Message)

	resp2, err := http.Get(srv.URL + "/favorites/ids")
	require.NoError(t, err)
	defer resp2.Body.Close()

	var ids struct {
		FavoriteIDs []int `json:"favorite_ids"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&ids))
	assert.Equal(t, []int{1}, ids.FavoriteIDs)

	resp3, err := http.Post(srv.URL+"/favorites/remove/1", "application/json", nil)
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)

	resp4, err := http.Post(srv.URL+"/favorites/remove/1", "application/json", nil)
	require.NoError(t, err)
	defer resp4.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp4.StatusCode)
}

func TestRoutes_SearchStatusCodes(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/media/search?name=Dune")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/media/search?name=Nothing")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)

	raw, err := io.ReadAll(resp2.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(bytes.TrimSpace(raw)))
}
