package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineIdentity(t *testing.T) {
	assert.Equal(t, "ld-game-engine", EngineName)
	assert.Equal(t, "0.1.0", EngineVersion)
	assert.Equal(t, "MIT", License)
	assert.Equal(t, "ld-game-engine/0.1.0", String())
}
