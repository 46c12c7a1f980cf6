package earthengine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:     srv.URL,
		Project:     "test-project",
		StaticToken: "test-token",
	}, nil)
}

func baseRequest() ExportRequest {
	return ExportRequest{
		StartDate:      "2024-08-01",
		EndDate:        "2024-09-01",
		FilenamePrefix: "sf_bay_area_sentinel2_10m",
		Folder:         "EarthEngine_Exports",
	}
}

func TestSubmitExportOK(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name": "projects/test-project/operations/ABC123",
		})
	})

	op, err := c.SubmitExport(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, "projects/test-project/operations/ABC123", op)

	assert.Equal(t, "/projects/test-project/image:export", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)

	// descriptor essentials
	assert.Equal(t, "sf_bay_area_sentinel2_10m", gotBody["description"])
	assert.Equal(t, "10000000000", gotBody["maxPixels"])

	feo, ok := gotBody["fileExportOptions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "GEO_TIFF", feo["fileFormat"])
	drive, ok := feo["driveDestination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "EarthEngine_Exports", drive["folder"])
	assert.Equal(t, "sf_bay_area_sentinel2_10m", drive["filenamePrefix"])

	// the expression graph must carry the shared region and the mask lambda
	expr, ok := gotBody["expression"].(map[string]any)
	require.True(t, ok)
	values, ok := expr["values"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, values, "mask")
	assert.Contains(t, values, "region")
	assert.Equal(t, "0", expr["result"])
}

func TestSubmitExportRemoteError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := c.SubmitExport(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestSubmitExportTruncatedBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		// declare more bytes than get written; the client sees an early EOF
		w.Header().Set("Content-Length", "100")
		_, _ = w.Write([]byte(`{"name":`))
	})

	_, err := c.SubmitExport(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response body")
}

func TestSubmitExportMissingOperationName(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := c.SubmitExport(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operation name")
}

func TestSubmitExportValidation(t *testing.T) {
	c := NewClient(Config{Project: "p", StaticToken: "t"}, nil)

	tests := []struct {
		name   string
		mutate func(*ExportRequest)
	}{
		{"bad start date", func(r *ExportRequest) { r.StartDate = "08/01/2024" }},
		{"bad end date", func(r *ExportRequest) { r.EndDate = "" }},
		{"inverted window", func(r *ExportRequest) { r.StartDate, r.EndDate = r.EndDate, r.StartDate }},
		{"open ring", func(r *ExportRequest) { r.Region = Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}} }},
		{"no prefix", func(r *ExportRequest) { r.FilenamePrefix = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			_, err := c.SubmitExport(context.Background(), req)
			require.Error(t, err)
		})
	}
}

func TestSubmitExportRequiresProject(t *testing.T) {
	c := NewClient(Config{StaticToken: "t"}, nil)
	_, err := c.SubmitExport(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project")
}
