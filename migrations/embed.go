package migrations

import "embed"

// Files holds the numbered SQL scripts applied in order at startup.
//
//go:embed *.sql
var Files embed.FS
