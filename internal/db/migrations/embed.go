// Package migrations embeds the SQL migration files so they can be
// applied with the goose programmatic API at server bootstrap and in
// integration tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
