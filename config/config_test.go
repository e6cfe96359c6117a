package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"DB_TYPE": "sqlite"}

	assert.Equal(t, "sqlite", GetString(c, "DB_TYPE", "postgres"))
	assert.Equal(t, "postgres", GetString(c, "MISSING", "postgres"))
	assert.Equal(t, "postgres", GetString(nil, "DB_TYPE", "postgres"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"PAGE_SIZE": "25", "BAD": "not-a-number"}

	assert.Equal(t, 25, GetInt(c, "PAGE_SIZE", 10))
	assert.Equal(t, 10, GetInt(c, "MISSING", 10))
	assert.Equal(t, 10, GetInt(c, "BAD", 10))
	assert.Equal(t, 10, GetInt(nil, "PAGE_SIZE", 10))
}
