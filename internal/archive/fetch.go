// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/appraisal-writer/internal/httputil"
)

// ImportURL downloads a CSV export from url and imports it.
func (s *Store) ImportURL(ctx context.Context, client *httputil.Client, url string, w io.Writer) (ImportSummary, error) {
	if url == "" {
		return ImportSummary{}, fmt.Errorf("no archive source URL configured")
	}
	body, err := client.Get(ctx, url)
	if err != nil {
		return ImportSummary{}, err
	}
	defer body.Close()

	fmt.Fprintf(w, "downloaded export from %s\n", url)
	return s.Import(ctx, body, w)
}
