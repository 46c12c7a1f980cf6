package earthengine

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dhenenjay/orbital-insights/constants"
)

// ExportRequest describes one composite-to-Drive export.
type ExportRequest struct {
	Description    string
	StartDate      string // YYYY-MM-DD
	EndDate        string // YYYY-MM-DD, exclusive
	Region         Polygon
	Bands          []string
	Folder         string
	FilenamePrefix string
	ScaleMeters    int
	CRS            string
	MaxPixels      float64
}

func (r *ExportRequest) applyDefaults() {
	if len(r.Region) == 0 {
		r.Region = DefaultRegion()
	}
	if len(r.Bands) == 0 {
		r.Bands = constants.CompositeBands
	}
	if r.ScaleMeters <= 0 {
		r.ScaleMeters = constants.ExportScaleMeters
	}
	if r.CRS == "" {
		r.CRS = constants.ExportCRS
	}
	if r.MaxPixels <= 0 {
		r.MaxPixels = constants.ExportMaxPixels
	}
	if r.Description == "" {
		r.Description = r.FilenamePrefix
	}
}

// Validate rejects requests the service would bounce anyway.
func (r *ExportRequest) Validate() error {
	for _, d := range []struct{ name, v string }{
		{"start date", r.StartDate},
		{"end date", r.EndDate},
	} {
		if _, err := time.Parse("2006-01-02", d.v); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
	}
	if r.StartDate >= r.EndDate {
		return fmt.Errorf("start date %s is not before end date %s", r.StartDate, r.EndDate)
	}
	if err := r.Region.Validate(); err != nil {
		return fmt.Errorf("region: %w", err)
	}
	if r.FilenamePrefix == "" {
		return fmt.Errorf("filename prefix is required")
	}
	return nil
}

// SubmitExport submits the export job and returns the operation name the
// service assigned. The job runs remotely; there is no waiting or polling
// here.
func (c *Client) SubmitExport(ctx context.Context, req ExportRequest) (string, error) {
	req.applyDefaults()
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("export request: %w", err)
	}
	if c.cfg.Project == "" {
		return "", fmt.Errorf("project is required")
	}
	start := time.Now()

	expr := CompositeExpression(CompositeParams{
		Collection: c.cfg.Collection,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Region:     req.Region,
		Bands:      req.Bands,
	})

	body := map[string]any{
		"expression":  expr,
		"description": req.Description,
		"fileExportOptions": map[string]any{
			"fileFormat": "GEO_TIFF",
			"driveDestination": map[string]any{
				"folder":         req.Folder,
				"filenamePrefix": req.FilenamePrefix,
			},
			"geoTiffOptions": map[string]any{
				"cloudOptimized": true,
			},
		},
		"grid": map[string]any{
			"crsCode": req.CRS,
			"affineTransform": map[string]any{
				"scaleX": float64(req.ScaleMeters),
				"scaleY": -float64(req.ScaleMeters),
			},
		},
		// int64 encoded as string, per API convention
		"maxPixels": strconv.FormatFloat(req.MaxPixels, 'f', 0, 64),
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/projects/" + c.cfg.Project + "/image:export"
	raw, err := c.sendJSON(ctx, url, body)
	if err != nil {
		c.logger.Error("ee.export.submit_failed",
			"description", req.Description,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("submit export: %w", err)
	}

	var op struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &op); err != nil {
		return "", fmt.Errorf("decode export response: %w", err)
	}
	if op.Name == "" {
		return "", fmt.Errorf("export response carries no operation name: %s", string(raw))
	}

	c.logger.Info("ee.export.submitted",
		"operation", op.Name,
		"description", req.Description,
		"collection", c.cfg.Collection,
		"start_date", req.StartDate,
		"end_date", req.EndDate,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return op.Name, nil
}
