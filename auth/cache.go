package auth

import (
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"
)

type (
	// ClaimsCache remembers tokens the codec already verified so the
	// gate can skip the signature check on every navigation. A hit can
	// survive the token's expiry by at most the eviction window.
	ClaimsCache struct {
		cache *bigcache.BigCache
	}
)

const cacheEviction = 10 * time.Minute

func NewClaimsCache() *ClaimsCache {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(cacheEviction))
	return &ClaimsCache{cache: cache}
}

func (c *ClaimsCache) Put(token string, claims Claims) {
	buf, err := json.Marshal(claims)
	if err != nil {
		return
	}
	c.cache.Set(token, buf)
}

func (c *ClaimsCache) Get(token string) (Claims, bool) {
	buf, err := c.cache.Get(token)
	if err != nil {
		return Claims{}, false
	}
	var claims Claims
	if json.Unmarshal(buf, &claims) != nil {
		return Claims{}, false
	}
	return claims, true
}
