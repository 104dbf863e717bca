package config

import (
	_ "embed"
)

// defaultsYAML is the lowest configuration layer. Every key the service
// reads has a default here, which also makes every key addressable from an
// APP_ environment variable.
//
//go:embed defaults.yaml
var defaultsYAML []byte
