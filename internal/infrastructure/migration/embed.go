package migration

import "embed"

// Scripts holds the versioned SQL for the goose and golang-migrate strategies,
// laid out as scripts/<tool>/<dialect>/.
//
//go:embed scripts
var Scripts embed.FS

const (
	gooseScriptsDir   = "scripts/goose"
	migrateScriptsDir = "scripts/migrate"
)
