package embedded

import "embed"

//go:embed "migrations"
var ServerMigrations embed.FS

//go:embed "auth/migrations"
var AuthMigrations embed.FS
