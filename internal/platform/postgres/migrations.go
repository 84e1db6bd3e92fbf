package postgres

import "embed"

// MigrationsDir is the directory, relative to the project root, that holds
// the goose SQL migrations. New migrations are created there.
const MigrationsDir = "internal/platform/postgres/migrations"

// Migrations holds the SQL migrations compiled into the binary.
// Files live at the root of the "migrations" directory of this FS.
//
//go:embed migrations/*.sql
var Migrations embed.FS
