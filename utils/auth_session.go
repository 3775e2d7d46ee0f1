package utils

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// AuthSession is the cached resolution of a session token hash. It carries
// exactly what the middleware puts into the request context.
type AuthSession struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

func authSessionKey(tokenHash string) string {
	return AuthCachePrefix + tokenHash
}

// GetCachedAuthSession looks a token hash up in the auth cache. A nil client
// or any cache error reads as a miss; the caller falls back to the database.
func GetCachedAuthSession(tokenHash string) (*AuthSession, bool) {
	if AuthCacheClient == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	raw, err := AuthCacheClient.Get(ctx, authSessionKey(tokenHash)).Result()
	if err != nil {
		return nil, false
	}
	var sess AuthSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, false
	}
	return &sess, true
}

// CacheAuthSession stores a resolved session, best effort.
func CacheAuthSession(tokenHash string, sess *AuthSession) {
	if AuthCacheClient == nil {
		return
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := AuthCacheClient.Set(ctx, authSessionKey(tokenHash), raw, AuthCacheTTL).Err(); err != nil {
		GetLogger().Warn("failed to cache auth session", zap.Error(err))
	}
}

// InvalidateAuthSession drops a cached session so revocation takes effect
// immediately rather than at TTL expiry.
func InvalidateAuthSession(tokenHash string) {
	if AuthCacheClient == nil || tokenHash == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := AuthCacheClient.Del(ctx, authSessionKey(tokenHash)).Err(); err != nil {
		GetLogger().Warn("failed to invalidate auth session", zap.Error(err))
	}
}
