package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3307, User: "importer", Password: "p@ss/word", Name: "cms", TimeoutSeconds: 5}

	assert.Equal(t,
		"importer:p%40ss%2Fword@tcp(db:3307)/cms?charset=utf8mb4&parseTime=True&loc=UTC&timeout=5s&readTimeout=5s&writeTimeout=5s",
		cfg.DSN())
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, Config{}.Timeout())
	assert.Equal(t, 2*time.Second, Config{TimeoutSeconds: 2}.Timeout())
}

func TestConnect_Unreachable(t *testing.T) {
	db, err := Connect(Config{
		Host:           "127.0.0.1",
		Port:           9999,
		User:           "root",
		Password:       "wrong",
		Name:           "cms",
		TimeoutSeconds: 1,
	})
	assert.Error(t, err)
	assert.Nil(t, db)
}
