// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"sync"
	"time"

	"github.com/anilink-cli/anilink/filesystem"
	"github.com/anilink-cli/anilink/key"
	"github.com/anilink-cli/anilink/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// cacheData defines the structured format for persisting cached Anilist records to disk.
type cacheData struct {
	Animes map[int]*Anime `json:"animes"`
}

// cacher provides a thread-safe wrapper for high-level caching operations.
type cacher struct {
	internal *gache.Cache[*cacheData]
	mu       sync.RWMutex
}

// Get retrieves a cached record for the specified id, honoring the metadata cache toggle.
func (c *cacher) Get(id int) mo.Option[*Anime] {
	if !viper.GetBool(key.MetadataCacheEnable) {
		return mo.None[*Anime]()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[*Anime]()
	}

	anime, ok := data.Animes[id]
	if !ok {
		return mo.None[*Anime]()
	}
	return mo.Some(anime)
}

// Set stores a record for the specified id, honoring the metadata cache toggle.
func (c *cacher) Set(id int, anime *Anime) error {
	if !viper.GetBool(key.MetadataCacheEnable) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = &cacheData{Animes: make(map[int]*Anime)}
	}
	data.Animes[id] = anime
	return c.internal.Set(data)
}

// idCacher provides local persistence for anime metadata lookups to not spam the API.
var idCacher = &cacher{
	internal: gache.New[*cacheData](
		&gache.Options{
			Path:       where.MetadataCache(),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.GacheFs{},
		},
	),
}
