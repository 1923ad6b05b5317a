// Package template defines the renderer-agnostic template contract the grid
// renderers rely on, keeping the concrete engine swappable.
package template

import "io"

// TemplateRenderer is the seam between grid renderers and the template
// engine. Render accepts either a template name or inline template content;
// RenderTemplate and RenderString are the explicit variants.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
