package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/iam/apiv1/iampb"
	"github.com/askhat/gostore/internal/metrics"
	"go.uber.org/zap"
)

const (
	publicReadRole = "roles/storage.objectViewer"
	allUsersMember = "allUsers"
)

// ensurePublicRead makes the object anonymously readable through both
// the bucket IAM policy and the object's own ACL. It is strictly best
// effort: uniform bucket-level access forbids object ACLs, and a
// missing policy permission must not fail the surrounding upload, so
// every error ends up as a warning only.
func (s *Service) ensurePublicRead(ctx context.Context, key string) {
	if err := s.grantPublicReadBinding(ctx); err != nil {
		metrics.PublicGrantFailuresTotal.Inc()
		s.log.Warn("grant bucket-level public read",
			zap.String("bucket", s.bucket),
			zap.Error(err),
		)
	}
	if err := s.store.AllowPublicRead(ctx, key); err != nil {
		metrics.PublicGrantFailuresTotal.Inc()
		s.log.Warn("set object acl to public read",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// grantPublicReadBinding appends the allUsers object-viewer binding to
// the bucket policy unless it is already present. Existing bindings
// are never touched, so concurrent grants of other roles survive the
// read-modify-write.
func (s *Service) grantPublicReadBinding(ctx context.Context) error {
	policy, err := s.store.Policy(ctx)
	if err != nil {
		return fmt.Errorf("fetch iam policy: %w", err)
	}

	for _, binding := range policy.Bindings {
		if binding.Role != publicReadRole {
			continue
		}
		for _, member := range binding.Members {
			if member == allUsersMember {
				return nil
			}
		}
	}

	policy.Bindings = append(policy.Bindings, &iampb.Binding{
		Role:    publicReadRole,
		Members: []string{allUsersMember},
	})
	if err := s.store.SetPolicy(ctx, policy); err != nil {
		return fmt.Errorf("save iam policy: %w", err)
	}
	return nil
}
