package cache

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Leerling-hub/Booking/domain"
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

const keyPrefix = "account:"

// memcached reads relative expirations above 30 days as a Unix timestamp
const maxRelativeExpiration = 30 * 24 * time.Hour

// AccountCache keeps the accounts the auth gate resolved recently, keyed by username
type AccountCache interface {
	Get(username string) (*domain.User, bool)
	Set(user *domain.User)
	Delete(username string)
}

// accountCache is a two level cache: ccache in process, then memcached when configured
type accountCache struct {
	local     *ccache.Cache[*domain.User]
	memcached *memcache.Client
	ttl       time.Duration
}

// NewAccountCache creates the cache. An empty memcachedHost disables the second level.
func NewAccountCache(memcachedHost string, ttl time.Duration) AccountCache {
	c := &accountCache{
		local: ccache.New(ccache.Configure[*domain.User]().MaxSize(1000)),
		ttl:   ttl,
	}
	if memcachedHost != "" {
		c.memcached = memcache.New(memcachedHost)
		log.Printf("Account cache using memcached at %s", memcachedHost)
	}
	return c
}

// Get looks in the local cache first, then in memcached
func (c *accountCache) Get(username string) (*domain.User, bool) {
	if item := c.local.Get(username); item != nil && !item.Expired() {
		return item.Value(), true
	}
	if c.memcached == nil {
		return nil, false
	}

	item, err := c.memcached.Get(keyPrefix + username)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			log.Printf("Error getting account from memcached: username=%s, error=%v", username, err)
		}
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal(item.Value, &user); err != nil {
		log.Printf("Error decoding cached account: username=%s, error=%v", username, err)
		return nil, false
	}

	// promote to the local level for the next requests
	c.local.Set(username, &user, c.ttl)
	return &user, true
}

// Set stores the account in both levels. The password hash is not serialized
// to memcached, so cached accounts must not be used to check credentials.
func (c *accountCache) Set(user *domain.User) {
	c.local.Set(user.Username, user, c.ttl)
	if c.memcached == nil {
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("Error encoding account for memcached: username=%s, error=%v", user.Username, err)
		return
	}
	item := &memcache.Item{
		Key:        keyPrefix + user.Username,
		Value:      data,
		Expiration: expiration(c.ttl, time.Now()),
	}
	if err := c.memcached.Set(item); err != nil {
		log.Printf("Error setting account in memcached: username=%s, error=%v", user.Username, err)
	}
}

// expiration converts ttl to memcached's Expiration field
func expiration(ttl time.Duration, now time.Time) int32 {
	if ttl > maxRelativeExpiration {
		return int32(now.Add(ttl).Unix())
	}
	return int32(ttl / time.Second)
}

// Delete evicts the account from both levels
func (c *accountCache) Delete(username string) {
	c.local.Delete(username)
	if c.memcached == nil {
		return
	}
	if err := c.memcached.Delete(keyPrefix + username); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		log.Printf("Error deleting account from memcached: username=%s, error=%v", username, err)
	}
}
