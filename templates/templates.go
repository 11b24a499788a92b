package templates

import "embed"

// FS holds the page and fragment templates. Dev mode reads the same files from disk instead.
//
//go:embed *.tmpl
var FS embed.FS
