// Package web provides the embedded web assets (templates + static files).
package web

import (
	"embed"
	"io/fs"

	"github.com/rs/zerolog/log"
)

//go:embed templates static
var assets embed.FS

// Templates returns the sub-filesystem rooted at "templates".
func Templates() fs.FS {
	sub, err := fs.Sub(assets, "templates")
	if err != nil {
		log.Error().Err(err).Msg("web: sub templates")
	}
	return sub
}

// Static returns the sub-filesystem rooted at "static".
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		log.Error().Err(err).Msg("web: sub static")
	}
	return sub
}
