package api

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/inkstone/inkwell/pkg/internal/services"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Within the cache window the front page must not notice writes at all;
// only an explicit flush (or expiry) makes them visible.
func TestGlobalListingCacheStaleness(t *testing.T) {
	app := setupApp(t)
	author, _ := signUp(t, "stale")

	var items []uint
	for idx := 0; idx < 3; idx++ {
		item, err := services.NewPost(author, fmt.Sprintf("post #%d", idx), nil, "")
		require.NoError(t, err)
		items = append(items, item.ID)
	}

	first := readBody(t, testGet(t, app, "/web/", ""))

	// A repeated read serves the stored bytes verbatim.
	second := readBody(t, testGet(t, app, "/web/", ""))
	assert.Equal(t, first, second)

	item, err := services.GetPost(items[0])
	require.NoError(t, err)
	require.NoError(t, services.DeletePost(item))

	// The deletion stays invisible while the entry lives.
	third := readBody(t, testGet(t, app, "/web/", ""))
	assert.Equal(t, first, third)

	services.FlushPageCache()

	fresh := readBody(t, testGet(t, app, "/web/", ""))
	assert.NotEqual(t, first, fresh)

	var payload listingPayload
	require.NoError(t, jsoniter.Unmarshal(fresh, &payload))
	assert.Equal(t, int64(2), payload.Count)
}

func TestGlobalListingCachePerPage(t *testing.T) {
	app := setupApp(t)
	author, _ := signUp(t, "pagey")

	for idx := 0; idx < 12; idx++ {
		_, err := services.NewPost(author, fmt.Sprintf("post #%d", idx), nil, "")
		require.NoError(t, err)
	}

	first := readBody(t, testGet(t, app, "/web/?page=1", ""))
	second := readBody(t, testGet(t, app, "/web/?page=2", ""))
	assert.NotEqual(t, first, second)

	var payload listingPayload
	require.NoError(t, jsoniter.Unmarshal(second, &payload))
	assert.Equal(t, 2, payload.Page)
	assert.Len(t, payload.Data, 2)
}

func TestOtherListingsUncached(t *testing.T) {
	app := setupApp(t)
	author, _ := signUp(t, "livey")

	_, err := services.NewPost(author, "first", nil, "")
	require.NoError(t, err)

	before := readBody(t, testGet(t, app, "/web/profile/livey", ""))

	_, err = services.NewPost(author, "second", nil, "")
	require.NoError(t, err)

	resp := testGet(t, app, "/web/profile/livey", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	after := readBody(t, resp)

	// Profile listings reflect writes immediately.
	assert.NotEqual(t, before, after)

	var payload listingPayload
	require.NoError(t, jsoniter.Unmarshal(after, &payload))
	assert.Equal(t, int64(2), payload.Count)
}
