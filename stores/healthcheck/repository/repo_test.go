package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/domain/keys"
	"github.com/x-xyz/ledger/service/cache/provider/primitive"
)

func TestMemoryStoreHealth(t *testing.T) {
	cache := primitive.NewPrimitive("health", 1)
	repo := New(nil, cache)
	c := ctx.Background()

	assert.NoError(t, repo.PingDB(c))
	assert.NoError(t, repo.PingCache(c))

	val, _, err := cache.Get(c, keys.RedisKey(keys.PfxHealthCheck, "testset"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), val)
}
