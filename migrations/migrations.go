// Package migrations embeds the SQL schema so the server and the migrate
// command apply the same files.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
