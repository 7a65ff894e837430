package data

import "embed"

//go:embed defaults/*.json
var defaultsFS embed.FS
