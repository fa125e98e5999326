package cache

import (
	"testing"
	"time"

	"github.com/bornholm/backlog/internal/core/model"
)

func TestMultiIndexCacheEvictsAllKeys(t *testing.T) {
	cache := NewMultiIndexCache[*CacheableUser](10, time.Minute)

	ada := model.NewUser(model.Name{First: "Ada", Last: "Lovelace"}, "ada_lovelace12345", "ada@x.com", "hash")
	grace := model.NewUser(model.Name{First: "Grace", Last: "Hopper"}, "grace_hopper12345", "grace@x.com", "hash")

	cache.Add(NewCacheableUser(ada), NewCacheableUser(grace))

	if e, g := 6, cache.Len(); e != g {
		t.Errorf("cache.Len(): expected %v, got %v", e, g)
	}

	for _, key := range []string{getUserIDCacheKey(ada.ID), getUserEmailCacheKey(ada.Email), getUserHandleCacheKey(ada.Handle)} {
		cached, exists := cache.Get(key)
		if !exists {
			t.Fatalf("key %s should be cached", key)
		}

		if e, g := ada.ID, cached.ID; e != g {
			t.Errorf("cached.ID: expected %v, got %v", e, g)
		}
	}

	cache.Remove(getUserEmailCacheKey(ada.Email), "unknown")

	for _, key := range []string{getUserIDCacheKey(ada.ID), getUserHandleCacheKey(ada.Handle)} {
		if _, exists := cache.Get(key); exists {
			t.Errorf("key %s should have been evicted", key)
		}
	}

	if _, exists := cache.Get(getUserHandleCacheKey(grace.Handle)); !exists {
		t.Errorf("grace should still be cached")
	}

	if e, g := 3, cache.Len(); e != g {
		t.Errorf("cache.Len(): expected %v, got %v", e, g)
	}
}
