package cache

import (
	"io"
	"testing"

	"hospital-management-api/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(config.RedisConfig{Host: mr.Host(), Port: mr.Port()}, quietLogger())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, mr.Addr(), client.Options().Addr)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	_, err := NewRedisClient(config.RedisConfig{Host: host, Port: port}, quietLogger())
	assert.Error(t, err)
}
