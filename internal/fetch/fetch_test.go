package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_DecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "token abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"name": "asha"}`))
	}))
	defer server.Close()

	var out struct {
		Name string `json:"name"`
	}
	opts := DefaultOptions()
	opts.Headers = map[string]string{"Authorization": "token abc"}
	err := JSON(context.Background(), http.MethodGet, server.URL, nil, &out, opts)
	require.NoError(t, err)
	assert.Equal(t, "asha", out.Name)
}

func TestJSON_SendsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	payload := map[string]string{"query": "{}"}
	err := JSON(context.Background(), http.MethodPost, server.URL, payload, nil, nil)
	assert.NoError(t, err)
}

func TestJSON_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := JSON(context.Background(), http.MethodGet, server.URL, nil, nil, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJSON_InvalidURL(t *testing.T) {
	err := JSON(context.Background(), http.MethodGet, "not-a-url", nil, nil, nil)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestRaw_ReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# Readme\n"))
	}))
	defer server.Close()

	body, err := Raw(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "# Readme\n", body)
}

func TestExtractMainText_PrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Navigation junk</nav>
		<main><h1>Asha</h1><p>Backend developer</p></main>
		<footer>Footer junk</footer>
	</body></html>`

	text, err := ExtractMainText(html, ProfilePageSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Asha")
	assert.Contains(t, text, "Backend developer")
	assert.NotContains(t, text, "Navigation junk")
	assert.NotContains(t, text, "Footer junk")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>just a paragraph</p></body></html>`
	text, err := ExtractMainText(html, []string{".missing"})
	require.NoError(t, err)
	assert.Equal(t, "just a paragraph", text)
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a b\n\nc", cleanWhitespace("a  \t b\n\n\n\n   c  "))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength)))
}
