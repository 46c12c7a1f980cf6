// Package earthengine is a thin client for the Earth Engine REST API: it
// builds a cloud-masked median-composite expression and submits asynchronous
// export jobs. Execution stays on the remote service; the only artifact kept
// locally is the returned operation name.
package earthengine

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/dhenenjay/orbital-insights/constants"
)

// ScopeEarthEngine is the OAuth scope the REST API requires.
const ScopeEarthEngine = "https://www.googleapis.com/auth/earthengine"

// Config for the Earth Engine client.
type Config struct {
	BaseURL         string        // default https://earthengine.googleapis.com/v1
	Project         string        // GCP project the requests are billed to
	CredentialsFile string        // service-account JSON; falls back to EE_CREDENTIALS_FILE
	StaticToken     string        // bearer token override, used by tests
	Collection      string        // default COPERNICUS/S2_SR_HARMONIZED
	Timeout         time.Duration // http client timeout
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	tokens     oauth2.TokenSource // lazily built unless StaticToken is set
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://earthengine.googleapis.com/v1"
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("EE_CREDENTIALS_FILE")
	}
	if cfg.Collection == "" {
		cfg.Collection = constants.Sentinel2Collection
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
	if cfg.StaticToken != "" {
		c.tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.StaticToken})
	}
	return c
}
