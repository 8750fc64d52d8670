package http_test

import (
	"net/http"
	"regexp"
	"testing"

	api "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/core/domain/model/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var echoParam = regexp.MustCompile(`:(\w+)`)

func TestLoadOpenAPI_IsValid(t *testing.T) {
	doc, err := api.LoadOpenAPI(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.NotNil(t, doc.Paths.Find("/api/packages/{trackingNumber}/history"))
}

// Every mounted API route has an operation in the document and vice versa.
func TestOpenAPI_DescribesEveryRoute(t *testing.T) {
	doc, err := api.LoadOpenAPI(t.Context())
	require.NoError(t, err)
	s := newTestServer(t, api.Handlers{})

	mounted := map[string]bool{}
	for _, r := range s.echo.Routes() {
		switch r.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			continue
		}
		if r.Path == "/health" || r.Path == "/swagger/*" {
			continue
		}
		path := echoParam.ReplaceAllString(r.Path, "{$1}")
		key := r.Method + " " + path
		mounted[key] = true

		item := doc.Paths.Find(path)
		if assert.NotNil(t, item, "missing path %s", path) {
			assert.NotNil(t, item.GetOperation(r.Method), "missing operation %s", key)
		}
	}

	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			assert.True(t, mounted[method+" "+path], "documented but not mounted: %s %s", method, path)
		}
	}
}

func TestRegisterDocs_Swagger(t *testing.T) {
	require.NoError(t, api.RegisterDocs(t.Context()))
	require.NoError(t, api.RegisterDocs(t.Context()))
	s := newTestServer(t, api.Handlers{})

	rec := s.do(t, http.MethodGet, "/swagger/doc.json", "", access.Principal{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/packages"`)
}
