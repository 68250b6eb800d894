// Package migrations embeds the goose SQL migrations so they ship inside
// the server binary and run at startup.
package migrations

import "embed"

//go:embed *.sql
var MigrationsFS embed.FS
