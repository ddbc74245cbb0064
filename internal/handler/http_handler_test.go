package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/pxid/internal/service"
	pkglog "github.com/weiawesome/pxid/pkg/log"
	"github.com/weiawesome/pxid/pkg/prefixid"
	"github.com/weiawesome/pxid/pkg/response"
)

type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

func newRouter(t *testing.T, profile prefixid.Profile) (*gin.Engine, *prefixid.Generator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gen := prefixid.New(profile)
	require.NoError(t, RegisterBindings(gen))

	r := gin.New()
	r.Use(pkglog.GinMiddleware(pkglog.New(pkglog.Config{Output: io.Discard})))
	NewHandler(service.NewIDService(gen, 5)).RegisterRoutes(r)
	return r, gen
}

func do(t *testing.T, r http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestGenerateEndpoint(t *testing.T) {
	r, gen := newRouter(t, prefixid.Strict)

	code, env := do(t, r, http.MethodPost, "/api/v1/ids", map[string]any{"prefix": "user", "count": 3})
	require.Equal(t, http.StatusCreated, code)
	require.True(t, env.Success)

	var data struct {
		Profile string   `json:"profile"`
		IDs     []string `json:"ids"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "strict", data.Profile)
	require.Len(t, data.IDs, 3)
	for _, id := range data.IDs {
		assert.True(t, gen.Validate(id, "user"))
	}
}

func TestGenerateEndpointErrors(t *testing.T) {
	r, _ := newRouter(t, prefixid.Strict)

	code, env := do(t, r, http.MethodPost, "/api/v1/ids", map[string]any{"prefix": "Bad Prefix"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, response.CodeInvalidPrefix, env.Error.Code)

	code, env = do(t, r, http.MethodPost, "/api/v1/ids", map[string]any{"count": 2})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, response.CodeBadRequest, env.Error.Code)
	assert.NotEmpty(t, env.Error.Details)

	code, env = do(t, r, http.MethodPost, "/api/v1/ids", map[string]any{"prefix": "user", "count": 6})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error.Message, "batch too large")
}

func TestParseEndpoint(t *testing.T) {
	r, gen := newRouter(t, prefixid.Permissive)
	id, err := gen.Generate("user")
	require.NoError(t, err)

	code, env := do(t, r, http.MethodGet, "/api/v1/ids/"+id, nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Prefix      string `json:"prefix"`
		UUID        string `json:"uuid"`
		TimestampMs int64  `json:"timestamp_ms"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "user", data.Prefix)
	want, err := gen.ExtractUUID(id)
	require.NoError(t, err)
	assert.Equal(t, want, data.UUID)
	assert.Positive(t, data.TimestampMs)
}

func TestParseEndpointErrors(t *testing.T) {
	r, _ := newRouter(t, prefixid.Permissive)

	code, env := do(t, r, http.MethodGet, "/api/v1/ids/invalid", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, response.CodeMissingSeparator, env.Error.Code)

	code, env = do(t, r, http.MethodGet, "/api/v1/ids/test_!!!", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, response.CodeParseFailure, env.Error.Code)
	assert.Contains(t, env.Error.Message, "invalid character")
}

func TestValidateEndpoint(t *testing.T) {
	r, gen := newRouter(t, prefixid.Permissive)
	id, err := gen.Generate("user")
	require.NoError(t, err)

	var data struct {
		Valid  bool   `json:"valid"`
		Reason string `json:"reason"`
	}

	code, env := do(t, r, http.MethodGet, "/api/v1/ids/"+id+"/validate?prefix=user", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Valid)

	code, env = do(t, r, http.MethodGet, "/api/v1/ids/malformed/validate?prefix=test", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.False(t, data.Valid)
	assert.NotEmpty(t, data.Reason)
}

func TestParseBatchEndpoint(t *testing.T) {
	r, gen := newRouter(t, prefixid.Permissive)
	a, err := gen.Generate("a")
	require.NoError(t, err)
	b, err := gen.Generate("b")
	require.NoError(t, err)

	code, env := do(t, r, http.MethodPost, "/api/v1/ids/parse", map[string]any{"ids": []string{a, b}})
	require.Equal(t, http.StatusOK, code)
	var data struct {
		IDs []struct {
			Prefix string `json:"prefix"`
		} `json:"ids"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.IDs, 2)
	assert.Equal(t, "b", data.IDs[1].Prefix)

	code, env = do(t, r, http.MethodPost, "/api/v1/ids/parse", map[string]any{"ids": []string{a, "nope"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, response.CodeBadRequest, env.Error.Code)
	require.Len(t, env.Error.Details, 1)
	assert.Contains(t, env.Error.Details[0], "prefixid")
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newRouter(t, prefixid.Permissive)
	code, env := do(t, r, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, response.CodeNotFound, env.Error.Code)
}
