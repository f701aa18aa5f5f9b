package migrations

import "embed"

// FS holds the SQL migration files embedded at build time; the iofs
// source driver reads them when migrations run at startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
