package main

import "embed"

// configFS holds the default configuration shipped with the binary
//
//go:embed configs/*.json
var configFS embed.FS
