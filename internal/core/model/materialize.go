package model

import (
	"context"

	"github.com/pkg/errors"
)

// Resolver loads referenced entities by primary identifier. Returned slices
// follow the order of the requested identifiers and skip unknown ones.
type Resolver interface {
	GetUsersByID(ctx context.Context, ids ...UserID) ([]*User, error)
	GetFeaturesByID(ctx context.Context, ids ...FeatureID) ([]*Feature, error)
	GetStoriesByID(ctx context.Context, ids ...StoryID) ([]*Story, error)
}

// Materializable is implemented by every entity exposed to API consumers.
//
// Populate replaces stored references with the referenced entities and must be
// idempotent. Clean returns the externally safe projection of the entity and
// never fetches anything: references that were not populated are omitted.
type Materializable[V any] interface {
	Populatable
	Clean() V
}

type Populatable interface {
	Populate(ctx context.Context, resolver Resolver) error
}

func PopulateAll[P Populatable](ctx context.Context, resolver Resolver, items ...P) error {
	for _, item := range items {
		if err := item.Populate(ctx, resolver); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func CleanAll[V any, M Materializable[V]](items []M) []V {
	views := make([]V, 0, len(items))
	for _, item := range items {
		views = append(views, item.Clean())
	}
	return views
}

func resolveOwner(ctx context.Context, resolver Resolver, ownerID UserID) (*User, error) {
	if ownerID == "" {
		return nil, nil
	}

	owners, err := resolver.GetUsersByID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve owner '%s'", ownerID)
	}

	if len(owners) == 0 {
		return nil, nil
	}

	return owners[0], nil
}

func cleanOwner(owner *User) *UserView {
	if owner == nil {
		return nil
	}

	view := owner.Clean()
	return &view
}
