package port

import (
	"github.com/bornholm/backlog/internal/core/model"
)

type Store interface {
	UserStore
	TeamStore
	FeatureStore
	StoryStore
}

// Any Store can resolve entity references
var _ model.Resolver = Store(nil)
