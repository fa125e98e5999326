package cache

import (
	"github.com/bornholm/backlog/internal/core/model"
)

type CacheableUser struct {
	*model.User
}

// CacheKeys implements [Cacheable].
func (u *CacheableUser) CacheKeys() []string {
	return []string{
		getUserIDCacheKey(u.ID),
		getUserEmailCacheKey(u.Email),
		getUserHandleCacheKey(u.Handle),
	}
}

// Unwrap returns a copy of the cached user, so that callers may populate or
// mutate it freely.
func (u *CacheableUser) Unwrap() *model.User {
	clone := *u.User
	return &clone
}

func NewCacheableUser(user *model.User) *CacheableUser {
	clone := *user
	return &CacheableUser{&clone}
}

var _ Cacheable = &CacheableUser{}

func getUserIDCacheKey(id model.UserID) string {
	return "id:" + string(id)
}

func getUserEmailCacheKey(email string) string {
	return "email:" + email
}

func getUserHandleCacheKey(handle string) string {
	return "handle:" + handle
}
