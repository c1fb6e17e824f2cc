package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/academy-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     6543,
		User:     "academy",
		Password: "secret",
		Name:     "academy",
		SSLMode:  "require",
	})
	assert.Equal(t, "host=db.internal port=6543 user=academy password=secret dbname=academy sslmode=require", dsn)
}
