package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredSpec_CoversRoutes(t *testing.T) {
	spec, err := registeredSpec()
	require.NoError(t, err)

	routes := []struct{ path, method string }{
		{"/users", "post"},
		{"/authentications", "post"},
		{"/authentications", "put"},
		{"/authentications", "delete"},
		{"/threads", "post"},
		{"/threads/{threadId}", "get"},
		{"/threads/{threadId}/live", "get"},
		{"/threads/{threadId}/comments", "post"},
		{"/threads/{threadId}/comments/{commentId}", "delete"},
		{"/threads/{threadId}/comments/{commentId}/likes", "put"},
		{"/threads/{threadId}/comments/{commentId}/replies", "post"},
		{"/threads/{threadId}/comments/{commentId}/replies/{replyId}", "delete"},
		{"/health", "get"},
		{"/feature-flags", "get"},
	}
	for _, r := range routes {
		ops, ok := spec.Paths[r.path]
		require.True(t, ok, "missing path %s", r.path)
		assert.Contains(t, ops, r.method, "%s %s", r.method, r.path)
	}
	assert.Contains(t, spec.Paths["/threads/{threadId}"]["get"], "404")
}

func TestCompare(t *testing.T) {
	base, err := parseSpec([]byte(`
paths:
  /threads:
    post:
      responses:
        "201": {}
        "400": {}
  /threads/{threadId}:
    get:
      responses:
        "200": {}
`))
	require.NoError(t, err)

	t.Run("Additive change passes", func(t *testing.T) {
		rev, err := parseSpec([]byte(`{"paths":{
			"/threads":{"post":{"responses":{"201":{},"400":{},"401":{}}}},
			"/threads/{threadId}":{"get":{"responses":{"200":{},"404":{}}}},
			"/users":{"post":{"responses":{"201":{}}}}}}`))
		require.NoError(t, err)
		assert.Empty(t, compare(base, rev))
	})

	t.Run("Removals are reported", func(t *testing.T) {
		rev, err := parseSpec([]byte(`{"paths":{"/threads":{"post":{"responses":{"201":{}}}}}}`))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"removed path: /threads/{threadId}",
			"removed response code: POST /threads -> 400",
		}, compare(base, rev))
	})

	t.Run("Missing paths field", func(t *testing.T) {
		_, err := parseSpec([]byte(`swagger: "2.0"`))
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}
	base := write("base.yaml", `
paths:
  /threads/{threadId}:
    parameters:
      - name: threadId
        in: path
    get:
      responses:
        "200": {}
        "404": {}
`)

	t.Run("Built-in document keeps the baseline", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-base", base}, &stdout, &stderr)
		assert.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "passed")
	})

	t.Run("Dropped operation fails", func(t *testing.T) {
		rev := write("rev.json", `{"paths":{"/threads/{threadId}":{"delete":{"responses":{"200":{}}}}}}`)
		var stdout, stderr bytes.Buffer
		code := run([]string{"-base", base, "-revision", rev}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "removed operation: GET /threads/{threadId}")
	})

	t.Run("Base is required", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(nil, &stdout, &stderr))
	})
}
