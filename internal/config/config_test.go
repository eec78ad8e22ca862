package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	conf, err := Load("../../cmd/app/config.yml")
	require.NoError(t, err)

	assert.Equal(t, "3000", conf.API.Port)
	assert.Equal(t, "development", conf.API.Environment)
	assert.Equal(t, "web/templates/*.html", conf.API.TemplatesGlob)
	assert.Equal(t, "debug", conf.Gin.Mode)
	assert.Equal(t, "app-session", conf.Session.CookieName)
	assert.Equal(t, "memory", conf.Session.Store)
	assert.Equal(t, 720, conf.Session.TTLMinutes)
	assert.Equal(t, "localhost:6379", conf.Redis.Addr)
	assert.Equal(t, "marketplace", conf.Postgres.DBName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("./no-such-config.yml")
	require.Error(t, err)
}
