package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	revokedKeyPrefix = "fittrack-revoked||"
	// used when a token carries no expiry
	DefaultRevocationTTL = 24 * time.Hour

	localCacheSize = 8 * 1024 * 1024
)

var _ revocationChecker = (*Revoker)(nil)

// Revoker keeps logged out tokens in redis until they would expire anyway.
// Revocations seen by this instance are also kept in a local cache, a revoked
// token never becomes valid again so only positive answers are cached.
type Revoker struct {
	redisClient  *redis.Client
	localRevoked *freecache.Cache
	now          func() time.Time
}

func NewRevoker(redisClient *redis.Client) *Revoker {
	return &Revoker{
		redisClient:  redisClient,
		localRevoked: freecache.NewCache(localCacheSize),
		now:          time.Now,
	}
}

func revocationKey(token string, claims *Claims) string {
	if claims != nil && claims.ID != "" {
		return revokedKeyPrefix + claims.ID
	}
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}

// Revoke marks the token as logged out. Returns false if it is already expired.
func (r *Revoker) Revoke(ctx context.Context, token string, claims *Claims) (bool, error) {
	ttl := DefaultRevocationTTL
	if claims != nil && claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			return false, nil
		}
	}

	key := revocationKey(token, claims)
	if err := r.redisClient.Set(ctx, key, r.now().Unix(), ttl).Err(); err != nil {
		return false, err
	}
	r.rememberLocally(key, ttl)
	return true, nil
}

func (r *Revoker) IsRevoked(ctx context.Context, token string, claims *Claims) (bool, error) {
	key := revocationKey(token, claims)
	if _, err := r.localRevoked.Get([]byte(key)); err == nil {
		return true, nil
	}

	count, err := r.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}

	ttl := DefaultRevocationTTL
	if claims != nil && claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(r.now())
	}
	r.rememberLocally(key, ttl)
	return true, nil
}

func (r *Revoker) rememberLocally(key string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	expireSeconds := int(math.Ceil(ttl.Seconds()))
	if err := r.localRevoked.Set([]byte(key), []byte{1}, expireSeconds); err != nil {
		log.Warnf("local revocation cache set [%s]: %s", key, err)
	}
}
