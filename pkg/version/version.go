package version

import "fmt"

const (
	// EngineName is the canonical engine name.
	EngineName = "ld-game-engine"
	// EngineVersion is the engine version.
	EngineVersion = "0.1.0"
	// License is the engine license identifier.
	License = "MIT"
)

// String returns the engine identity as "name/version".
func String() string {
	return fmt.Sprintf("%s/%s", EngineName, EngineVersion)
}
