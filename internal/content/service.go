package content

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"
)

// ErrNoContentForRole indicates the filtered result was empty. The reference
// behaviour treats an empty result as a not-found condition rather than a
// valid empty listing; ServiceConfig.EmptyAsOK flips that.
var ErrNoContentForRole = errors.New("content: no items for role")

// ServiceConfig tunes retrieval behaviour.
type ServiceConfig struct {
	// EmptyAsOK returns an empty list instead of ErrNoContentForRole when
	// nothing is visible to the role. Off by default for compatibility.
	EmptyAsOK bool
}

// Service coordinates role-filtered content retrieval.
type Service struct {
	repo  Repository
	cache *Cache
	cfg   ServiceConfig
	group singleflight.Group
}

// NewService constructs a Service.
func NewService(repo Repository, cache *Cache, cfg ServiceConfig) *Service {
	return &Service{repo: repo, cache: cache, cfg: cfg}
}

// FetchForRole returns every content item visible to role. Concurrent calls
// for the same role share a single store query.
func (s *Service) FetchForRole(ctx context.Context, role string) ([]Item, error) {
	v, err, _ := s.group.Do(role, func() (any, error) {
		return s.cache.Fetch(ctx, role, func(ctx context.Context) ([]Item, error) {
			return s.repo.ListByRole(ctx, role)
		})
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]Item)
	if len(items) == 0 && !s.cfg.EmptyAsOK {
		return nil, ErrNoContentForRole
	}
	return items, nil
}
