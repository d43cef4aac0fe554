package handlers_test

import (
	"archive/zip"
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, "POST", "/api/preview", "", gin.H{"files": []gin.H{
		{"path": "index.html", "content": "<html><head></head><body></body></html>"},
		{"path": "s.css", "content": "b{color:red}"},
		{"path": "a.js", "content": "1+1"},
	}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<style>\nb{color:red}\n</style>")
	assert.Contains(t, w.Body.String(), "<script>\n1+1\n</script>")
}

func TestPreviewEndpointRejectsMissingFiles(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, "POST", "/api/preview", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, "POST", "/api/export", "", gin.H{
		"name": "my-app",
		"files": []gin.H{
			{"path": "index.html", "content": "<html></html>"},
			{"path": "app.js", "content": "1+1"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="my-app.zip"`, w.Header().Get("Content-Disposition"))

	reader, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)
	assert.Equal(t, "index.html", reader.File[0].Name)
	assert.Equal(t, "app.js", reader.File[1].Name)
}

func TestExportEndpointDefaultName(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, "POST", "/api/export", "", gin.H{
		"files": []gin.H{{"path": "index.html", "content": ""}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="generated-app.zip"`, w.Header().Get("Content-Disposition"))
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, "GET", "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetaEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, "GET", "/api/meta", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mobile App")
	assert.Contains(t, w.Body.String(), "E-Commerce")
}
