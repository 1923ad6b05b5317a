package htmlgrid

import "embed"

// TemplatesFS bundles the pongo2 templates the renderer ships with.
//
//go:embed templates/*.tmpl
var TemplatesFS embed.FS

// AssetsFS bundles the stylesheet and the client-side controller script.
// Serve it under a static route and include both files on pages that embed
// grids.
//
//go:embed assets/*
var AssetsFS embed.FS
