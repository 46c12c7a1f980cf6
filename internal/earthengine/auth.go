package earthengine

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// tokenSource resolves credentials in order: static token (tests), explicit
// service-account file, then application-default credentials. The source is
// cached on the client so tokens get reused across requests.
func (c *Client) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if c.tokens != nil {
		return c.tokens, nil
	}

	if c.cfg.CredentialsFile != "" {
		b, err := os.ReadFile(c.cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, b, ScopeEarthEngine)
		if err != nil {
			return nil, fmt.Errorf("parse credentials: %w", err)
		}
		c.tokens = creds.TokenSource
		return c.tokens, nil
	}

	ts, err := google.DefaultTokenSource(ctx, ScopeEarthEngine)
	if err != nil {
		return nil, fmt.Errorf("default credentials: %w", err)
	}
	c.tokens = ts
	return c.tokens, nil
}
