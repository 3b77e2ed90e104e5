// Package migrations embeds the schema of every supported driver, one directory per driver name.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
