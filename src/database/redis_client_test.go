package database

import (
	"context"
	"testing"

	"mergington-activities/src/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisDisabled(t *testing.T) {
	assert.Nil(t, NewRedis(config.Config{}))
	assert.Nil(t, NewAsynqClient(config.Config{}))
	assert.Error(t, PingRedis(context.Background(), nil))
}

func TestPingRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedis(config.Config{RedisURI: mr.Addr()})
	require.NotNil(t, client)
	defer client.Close()

	assert.NoError(t, PingRedis(context.Background(), client))

	mr.Close()
	assert.Error(t, PingRedis(context.Background(), client))
}

func TestRedisClientOpt(t *testing.T) {
	opt := RedisClientOpt(config.Config{RedisURI: "localhost:6380", RedisPassword: "pw", RedisDB: 2})

	assert.Equal(t, "localhost:6380", opt.Addr)
	assert.Equal(t, "pw", opt.Password)
	assert.Equal(t, 2, opt.DB)
}
