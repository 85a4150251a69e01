// Package schema holds the goose migrations for the subway database.
// They are embedded so the server binary can migrate without the source tree.
package schema

import "embed"

//go:embed *.sql
var Migrations embed.FS
