package server

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/typeset/internal/config"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newServer(t *testing.T, content string) *PreviewServer {
	t.Helper()
	return New(writeTemplate(t, content), config.ServerSettings{Host: "localhost", Port: 0}, nil)
}

func TestIndexRendersBothArtifacts(t *testing.T) {
	s := newServer(t, "name: Preview Me\n")

	rec := httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Preview Me")
	assert.Contains(t, body, "documentclass: book")
	assert.Contains(t, body, "usepackage{titlesec}")
}

func TestIndexNotFoundForOtherPaths(t *testing.T) {
	s := newServer(t, "name: x\n")

	rec := httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest("GET", "/nope", nil))
	assert.Equal(t, 404, rec.Code)
}

func TestArtifactEndpoints(t *testing.T) {
	s := newServer(t, "name: x\n")

	rec := httptest.NewRecorder()
	s.handleArtifact(s.generateMetadata)(rec, httptest.NewRequest("GET", "/artifacts/metadata", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "---\n")

	rec = httptest.NewRecorder()
	s.handleArtifact(s.generatePreamble)(rec, httptest.NewRequest("GET", "/artifacts/preamble", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "\\usepackage")
}

func TestBrokenTemplateReportsError(t *testing.T) {
	s := newServer(t, "typography: [broken")

	rec := httptest.NewRecorder()
	s.handleArtifact(s.generateMetadata)(rec, httptest.NewRequest("GET", "/artifacts/metadata", nil))
	assert.Equal(t, 422, rec.Code)
}

func TestNotifyReloadWithoutClients(t *testing.T) {
	s := newServer(t, "name: x\n")
	assert.NotPanics(t, s.NotifyReload)
}
