package schemas

import "embed"

// SchemasFS holds every payload contract, laid out as payloads/<name>/v<major>.json.
//
//go:embed payloads
var SchemasFS embed.FS
