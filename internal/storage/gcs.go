package storage

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/storage"
	"github.com/askhat/gostore/internal/config"
	"google.golang.org/api/option"
)

// NewGCSClient establishes a Google Cloud Storage client using the
// provided configuration. Without an explicit credentials file the
// client falls back to application default credentials.
func NewGCSClient(ctx context.Context, cfg config.GCSConfig) (*storage.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			return nil, fmt.Errorf("credentials file %q: %w", cfg.CredentialsFile, err)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return client, nil
}
