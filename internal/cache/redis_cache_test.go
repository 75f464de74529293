package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/cache"
	"github.com/aurumlabs/gold-commerce-platform/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedRate struct {
	AssetName   string  `json:"asset_name"`
	RatePerUnit float64 `json:"rate_per_unit"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL:   10 * time.Minute,
		TodayRateTTL: 5 * time.Minute,
	}
	redisCache := cache.NewRedisCache(client, cfg)

	return redisCache, mock, cfg
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	testKey := cache.Key(cache.TodayRateKeyPrefix, "gold")
	testValue := cachedRate{AssetName: "gold", RatePerUnit: 7245.50}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		var result cachedRate

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err, "Get should not return an error on success")
		assert.True(t, found, "Get should return found=true when key exists")
		assert.Equal(t, testValue, result, "Get should correctly unmarshal the data")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		var result cachedRate

		mock.ExpectGet(testKey).SetErr(redis.Nil)

		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err, "Get should not return an error on cache miss")
		assert.False(t, found, "Get should return found=false on cache miss")
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		var result cachedRate

		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(testKey).SetErr(expectedErr)

		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err, "Get should return an error when Redis fails")
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		var result cachedRate

		mock.ExpectGet(testKey).SetVal(`{"asset_name": "gold", "rate_per_unit": "nan"}`)

		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err, "Get should return an error on unmarshal failure")
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	testKey := cache.Key(cache.ProductKeyPrefix, "42")
	testValue := cachedRate{AssetName: "silver", RatePerUnit: 89.20}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		mock.ExpectSet(testKey, jsonData, time.Minute).SetVal("OK")

		err := redisCache.Set(ctx, testKey, testValue, time.Minute)

		assert.NoError(t, err, "Set should succeed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Zero TTL Falls Back To Default", func(t *testing.T) {
		redisCache, mock, cfg := setup(t)

		mock.ExpectSet(testKey, jsonData, cfg.DefaultTTL).SetVal("OK")

		err := redisCache.Set(ctx, testKey, testValue, 0)

		assert.NoError(t, err, "Set should apply the default TTL")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		expectedErr := errors.New("redis write error")
		mock.ExpectSet(testKey, jsonData, time.Minute).SetErr(expectedErr)

		err := redisCache.Set(ctx, testKey, testValue, time.Minute)

		require.Error(t, err, "Set should fail when Redis fails")
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	testKey := cache.Key(cache.CartKeyPrefix, "user@example.com")

	t.Run("Success", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		mock.ExpectDel(testKey).SetVal(1)

		err := redisCache.Delete(ctx, testKey)

		assert.NoError(t, err, "Delete should succeed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		expectedErr := errors.New("redis delete error")
		mock.ExpectDel(testKey).SetErr(expectedErr)

		err := redisCache.Delete(ctx, testKey)

		require.Error(t, err, "Delete should fail when Redis fails")
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
