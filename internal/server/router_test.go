package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toma4423/dtpsupport"
	"github.com/toma4423/dtpsupport/internal/config"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(config.Default(), nil)
}

func postFormat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/format", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestFormatHandler(t *testing.T) {
	r := newTestRouter()

	body := `{
		"names": ["佐藤一郎", "山本太郎", "鈴木花子"],
		"surnames": ["佐藤", "鈴木"]
	}`
	rec := postFormat(t, r, body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp formatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	_, err := uuid.Parse(resp.JobID)
	assert.NoError(t, err, "job_id must be a UUID")

	assert.Equal(t, 3, resp.Counts.Input)
	assert.Equal(t, 2, resp.Counts.Formatted)
	assert.Equal(t, 1, resp.Counts.Skipped)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "佐藤　一郎", resp.Rows[0].Text)
	assert.Equal(t, "鈴木　花子", resp.Rows[1].Text)
	assert.Equal(t, []string{"山本太郎"}, resp.Skipped)
}

func TestFormatHandlerOverrides(t *testing.T) {
	r := newTestRouter()

	body := `{
		"names": ["佐藤一郎", "山本太郎"],
		"surnames": ["佐藤"],
		"width": 7,
		"fallback": "auto-split"
	}`
	rec := postFormat(t, r, body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp formatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 7, resp.Settings.Width)
	assert.Equal(t, "auto-split", resp.Settings.Fallback)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "佐　藤　一　郎", resp.Rows[0].Text)
	// The unmatched name survives via the midpoint split.
	assert.Equal(t, 1, resp.Counts.AutoSplit)
	assert.Equal(t, 0, resp.Counts.Skipped)
}

func TestFormatHandlerInvalidJSON(t *testing.T) {
	r := newTestRouter()
	rec := postFormat(t, r, "{")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormatHandlerMissingNames(t *testing.T) {
	r := newTestRouter()
	rec := postFormat(t, r, `{"surnames": ["佐藤"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormatHandlerBadSettings(t *testing.T) {
	tests := map[string]string{
		"alignment": `{"names": ["佐藤一郎"], "alignment": "middle"}`,
		"match":     `{"names": ["佐藤一郎"], "match": "greedy"}`,
		"fallback":  `{"names": ["佐藤一郎"], "fallback": "guess"}`,
		"width":     `{"names": ["佐藤一郎"], "width": 0}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			r := newTestRouter()
			rec := postFormat(t, r, body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "invalid formatting settings", resp["error"])
			assert.NotEmpty(t, resp["details"])
		})
	}
}

func TestFormatsEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/formats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Formats []string `json:"formats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Formats, "text")
	assert.Contains(t, body.Formats, "table")
}

func TestRequestConfig(t *testing.T) {
	base := *config.Default()
	width := 9
	join := "　"
	spread := true

	req := formatRequest{Width: &width, Alignment: "left", Join: &join, Spread: &spread}
	cfg := req.config(base)

	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, "left", cfg.Alignment)
	assert.Equal(t, "　", cfg.Join)
	assert.True(t, cfg.Spread)
	// Untouched settings keep the server defaults.
	assert.Equal(t, base.Match, cfg.Match)
	assert.Equal(t, base.Fallback, cfg.Fallback)
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)

	writeError(ctx, http.StatusTeapot, "message", errors.New("detail"))

	require.Equal(t, http.StatusTeapot, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "message", body["error"])
	assert.Equal(t, "detail", body["details"])
}

func TestFormatHandlerEmptyDictionarySkipsAll(t *testing.T) {
	r := newTestRouter()

	rec := postFormat(t, r, `{"names": ["佐藤一郎"]}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp formatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Counts.Skipped)
	assert.Empty(t, resp.Rows)
	require.Len(t, resp.Diagnostics, 1)
	assert.Equal(t, dtpsupport.DiagNoSurnameMatch, resp.Diagnostics[0].Kind)
}
