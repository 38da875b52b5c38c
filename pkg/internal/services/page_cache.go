package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/inkstone/inkwell/pkg/internal/cache"
)

// PageCacheWindow is how long a cached listing response stays valid. Writers
// never invalidate; staleness up to the window is the accepted trade-off.
const PageCacheWindow = 20 * time.Second

const pageCacheTag = "rendered-page"

type CachedPage struct {
	ContentType string
	Body        []byte
}

func pageCacheKey(path, query string) string {
	if len(query) == 0 {
		return fmt.Sprintf("rendered-page#%s", path)
	}
	return fmt.Sprintf("rendered-page#%s?%s", path, query)
}

func GetCachedPage(path, query string) (*CachedPage, bool) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	val, err := marshal.Get(ctx, pageCacheKey(path, query), new(CachedPage))
	if err != nil {
		return nil, false
	}

	page, ok := val.(*CachedPage)
	return page, ok
}

func SetCachedPage(path, query string, page CachedPage) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	_ = marshal.Set(
		ctx,
		pageCacheKey(path, query),
		page,
		store.WithExpiration(PageCacheWindow),
		store.WithTags([]string{pageCacheTag}),
	)

	// Ristretto applies buffered writes asynchronously; wait them out so the
	// next read already sees the entry.
	localCache.R.Wait()
}

// FlushPageCache drops every cached page at once. There is no per-key
// invalidation on write anywhere, only this full flush or natural expiry.
func FlushPageCache() {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	_ = marshal.Invalidate(ctx, store.WithInvalidateTags([]string{pageCacheTag}))
	localCache.R.Wait()
}
