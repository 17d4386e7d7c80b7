// Package sql exposes the goose migrations embedded in the binary.
package sql

import "embed"

const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS
