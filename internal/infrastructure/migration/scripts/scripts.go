// Package scripts embeds the goose SQL migrations, one directory per dialect.
package scripts

import "embed"

//go:embed mysql/*.sql sqlite/*.sql
var FS embed.FS
