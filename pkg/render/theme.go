package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig is the resolved theme payload handed to renderers: design
// tokens, derived CSS custom properties, partial template overrides and an
// asset URL resolver.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	Partials map[string]string
	AssetURL func(key string) string
}

// ResolveTheme turns a go-theme selection into a ThemeConfig. Variant tokens
// and assets override the manifest-level ones; fallbacks fill partials the
// manifest does not define.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*ThemeConfig, error) {
	if selector == nil {
		return nil, fmt.Errorf("render: theme selector is required")
	}

	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("render: theme %q resolved to an empty selection", name)
	}

	manifest := selection.Manifest

	tokens := make(map[string]string, len(manifest.Tokens))
	for k, v := range manifest.Tokens {
		tokens[k] = v
	}
	partials := make(map[string]string, len(fallbacks)+len(manifest.Templates))
	for k, v := range fallbacks {
		partials[k] = v
	}
	for k, v := range manifest.Templates {
		partials[k] = v
	}

	assets := manifest.Assets
	files := make(map[string]string, len(assets.Files))
	for k, v := range assets.Files {
		files[k] = v
	}

	if selection.Variant != "" {
		if v, ok := manifest.Variants[selection.Variant]; ok {
			for k, token := range v.Tokens {
				tokens[k] = token
			}
			for k, tmpl := range v.Templates {
				partials[k] = tmpl
			}
			for k, file := range v.Assets.Files {
				files[k] = file
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for k, v := range tokens {
		cssVars["--"+k] = v
	}

	prefix := strings.TrimRight(assets.Prefix, "/")
	assetURL := func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + file
	}

	return &ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  cssVars,
		Partials: partials,
		AssetURL: assetURL,
	}, nil
}
