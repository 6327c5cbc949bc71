package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_LookupHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis(client, time.Hour)
	page := resultPage("Shinjuku Locker")
	payload, err := json.Marshal(page)
	require.NoError(t, err)

	mock.ExpectGet(redisKeyPrefix + "k1").SetVal(string(payload))

	got, ok := c.Lookup(context.Background(), "k1")
	require.True(t, ok)
	assert.Equal(t, "Shinjuku Locker", got.Results[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_LookupMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis(client, time.Hour)

	mock.ExpectGet(redisKeyPrefix + "missing").RedisNil()

	_, ok := c.Lookup(context.Background(), "missing")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_LookupFailureIsMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis(client, time.Hour)

	mock.ExpectGet(redisKeyPrefix + "k1").SetErr(errors.New("connection refused"))

	_, ok := c.Lookup(context.Background(), "k1")
	assert.False(t, ok)
}

func TestRedis_StoreSetsTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis(client, 3600*time.Second)
	page := resultPage("a")
	payload, err := json.Marshal(page)
	require.NoError(t, err)

	mock.ExpectSet(redisKeyPrefix+"k1", payload, 3600*time.Second).SetVal("OK")

	c.Store(context.Background(), "k1", page)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_StoreFailureIsSilent(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedis(client, time.Hour)
	page := resultPage("a")
	payload, _ := json.Marshal(page)

	mock.ExpectSet(redisKeyPrefix+"k1", payload, time.Hour).SetErr(redis.ErrClosed)

	// Must not panic or surface the error.
	c.Store(context.Background(), "k1", page)
}
