package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:4000", c.ServerEndpointAddr)
}

func TestLoadConfig_FlagOverridesDefault(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"app", "-a", "http://example.com:8080"}

	c := LoadConfig()
	assert.Equal(t, "http://example.com:8080", c.ServerEndpointAddr)
}
