package cache

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCache_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, time.Hour)

	mock.ExpectGet(defaultKeyPrefix + "perro").SetVal("cachorro")

	val, ok := c.Get("  Perro ")
	assert.True(t, ok)
	assert.Equal(t, "cachorro", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, time.Hour)

	mock.ExpectGet(defaultKeyPrefix + "gato").RedisNil()

	val, ok := c.Get("gato")
	assert.False(t, ok)
	assert.Empty(t, val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetErrorTreatedAsMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, time.Hour)

	mock.ExpectGet(defaultKeyPrefix + "gato").SetErr(assert.AnError)

	_, ok := c.Get("gato")
	assert.False(t, ok)
}

func TestRedisCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, time.Hour)

	mock.ExpectSet(defaultKeyPrefix+"perro", "cachorro", time.Hour).SetVal("OK")

	assert.NoError(t, c.Set("Perro", "cachorro"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Clear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, time.Hour)

	keys := []string{defaultKeyPrefix + "a", defaultKeyPrefix + "b"}
	mock.ExpectScan(0, defaultKeyPrefix+"*", 100).SetVal(keys, 0)
	mock.ExpectDel(keys...).SetVal(2)

	assert.NoError(t, c.Clear())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRedisCache_InvalidURL(t *testing.T) {
	_, err := NewRedisCache("not-a-url", time.Hour)
	assert.Error(t, err)
}
