package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/partials/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	StylesheetName = "tokensale.css"
	ScriptName     = "tokensale.js"
)

// TemplatesFS exposes the embedded template bundle rooted at the templates
// directory, so "page.tmpl" is the entry point.
func TemplatesFS() fs.FS {
	return subFS(embeddedTemplates, "templates")
}

// AssetsFS exposes the embedded CSS/JS so callers can serve them over HTTP.
func AssetsFS() fs.FS {
	return subFS(embeddedAssets, "assets")
}

func subFS(files embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		return files
	}
	return sub
}
