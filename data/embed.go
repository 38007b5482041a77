// Package data provides the embedded object catalogs.
package data

import "embed"

// dataFS embeds all catalog files from the data directory at build time.
//
//go:embed *.json *.yaml
var dataFS embed.FS

// FS returns the embedded filesystem containing the catalogs.
func FS() embed.FS {
	return dataFS
}

// CatalogFiles lists the catalogs loaded for a game, in load order.
var CatalogFiles = []string{"fixtures.yaml", "actors.json", "items.json"}
