// Package assets embeds the files shipped with the binaries.
package assets

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed seed.yaml
var Seed []byte
