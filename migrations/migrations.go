// Package migrations embeds the SQL schema migrations so that both the
// server and the standalone migrator run from the same source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
