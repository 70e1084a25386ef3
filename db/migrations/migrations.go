package migrations

import "embed"

// FS embeds the SQL migrations for the campaigns table read by the Postgres
// dataset source. golang-migrate reads them through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the Postgres source expects.
const Version uint = 1
