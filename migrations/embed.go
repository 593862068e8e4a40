// Package migrations embeds the catalogue schema so the API binary can apply
// it without the SQL files on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
