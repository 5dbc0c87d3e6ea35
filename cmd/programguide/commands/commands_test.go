package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/programguide/pkg/programguide/codes"
)

// fakeGuide is a v1 upstream that records request paths.
type fakeGuide struct {
	*httptest.Server
	mu    sync.Mutex
	paths []string
	keys  []string
}

func newFakeGuide(t *testing.T) *fakeGuide {
	t.Helper()
	f := &fakeGuide{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.paths = append(f.paths, r.URL.Path)
		f.keys = append(f.keys, r.URL.Query().Get("key"))
		f.mu.Unlock()

		if strings.Contains(r.URL.Path, "/info/") {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"list":{"g1":[{"id":"2024010212345"}]}}`))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeGuide) host() string {
	return strings.TrimPrefix(f.URL, "http://")
}

func (f *fakeGuide) lastPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.paths) == 0 {
		return ""
	}
	return f.paths[len(f.paths)-1]
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("NHK_API_KEY", "")
	t.Setenv("NHK_RPS", "0")

	base := []string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "--log-level", "error"}

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append(base, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestList_CallsUpstreamWithResolvedCodes(t *testing.T) {
	f := newFakeGuide(t)

	out, _, err := execute(t, "--api-key", "k", "--domain", f.host(), "list", "Tokyo", "NHK FM", "2024-01-02")
	require.NoError(t, err)

	assert.Equal(t, "/v1/pg/list/130/r3/2024-01-02.json", f.lastPath())
	assert.Equal(t, []string{"k"}, f.keys)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Contains(t, body, "list")
	assert.Contains(t, out, "\n  \"list\"", "output is indented")
}

func TestGuideCommands_Paths(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"genre", "130", "g1", "0101", "2024-01-02"}, "/v1/pg/genre/130/g1/0101/2024-01-02.json"},
		{[]string{"now", "Osaka", "e1"}, "/v1/pg/now/270/e1.json"},
		{[]string{"--api-version", "v2", "now", "130", "g1"}, "/v2/pg/now/130/g1.json"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			f := newFakeGuide(t)

			args := append([]string{"--api-key", "k", "--domain", f.host()}, tt.args...)
			_, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.lastPath())
		})
	}
}

func TestInfo_UpstreamNotFound(t *testing.T) {
	f := newFakeGuide(t)

	_, stderr, err := execute(t, "--api-key", "secret-key", "--domain", f.host(), "info", "130", "g1", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.NotContains(t, err.Error(), "secret-key")
	assert.NotContains(t, stderr, "secret-key")
}

func TestList_UnknownAreaFailsBeforeRequest(t *testing.T) {
	f := newFakeGuide(t)

	_, _, err := execute(t, "--api-key", "k", "--domain", f.host(), "list", "atlantis", "g1")
	require.Error(t, err)
	assert.ErrorIs(t, err, codes.ErrUnknownIdentifier)
	assert.Empty(t, f.lastPath())
}

func TestList_InvalidDate(t *testing.T) {
	_, _, err := execute(t, "--api-key", "k", "list", "130", "g1", "someday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "someday")
}

func TestGuideCommands_RequireAPIKey(t *testing.T) {
	for _, args := range [][]string{
		{"now", "130", "g1"},
		{"radio", "now", "130", "r1"},
	} {
		_, _, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "api key")
	}
}

func TestRadioEvent_ArgumentShapes(t *testing.T) {
	_, _, err := execute(t, "--api-key", "k", "radio", "event")
	assert.Error(t, err)

	_, _, err = execute(t, "--api-key", "k", "radio", "event", "--by-program", "130", "r1")
	assert.Error(t, err)

	_, _, err = execute(t, "--api-key", "k", "radio", "event", "--by-program", "atlantis", "r1", "123")
	assert.ErrorIs(t, err, codes.ErrUnknownIdentifier)
}

func TestCodesList(t *testing.T) {
	out, _, err := execute(t, "codes", "list", "service")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, codes.Services.Len())
	assert.True(t, strings.HasPrefix(lines[0], "g1 "))

	out, _, err = execute(t, "codes", "list", "area", "--json")
	require.NoError(t, err)
	var entries []codes.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, codes.Areas.Len())

	_, _, err = execute(t, "codes", "list", "channel")
	assert.Error(t, err)
}

func TestCodesResolve(t *testing.T) {
	out, _, err := execute(t, "codes", "resolve", "area", "東京")
	require.NoError(t, err)

	var entry codes.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	assert.Equal(t, "130", entry.Code)

	_, _, err = execute(t, "codes", "resolve", "genre", "baseball")
	assert.ErrorIs(t, err, codes.ErrUnknownIdentifier)
}

func TestCodesSearch(t *testing.T) {
	out, _, err := execute(t, "codes", "search", "baseball", "--dimension", "genre", "--json")
	require.NoError(t, err)

	var hits []struct {
		Entry codes.Entry `json:"entry"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &hits))
	require.NotEmpty(t, hits)
	assert.Equal(t, "0101", hits[0].Entry.Code)

	_, _, err = execute(t, "codes", "search", "tokyo", "--dimension", "channel")
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--api-version", "latest", "codes", "list", "area")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
