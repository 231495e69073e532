// Package migrations embeds the database schema migration files.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
