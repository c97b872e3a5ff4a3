// Package render writes command results in the selected output format
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/arthur-debert/dotools/pkg/ui/styles"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Renderer writes values to one writer in one format
type Renderer struct {
	out    io.Writer
	format string
	styles *styles.Styles
}

// New creates a renderer. st may be nil for unstyled text.
func New(out io.Writer, format string, st *styles.Styles) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format)
	}
	if st == nil {
		st = styles.Plain(out)
	}
	return &Renderer{out: out, format: format, styles: st}, nil
}

// Styles returns the styles text output is rendered with
func (r *Renderer) Styles() *styles.Styles {
	return r.styles
}

// Value renders a single JSON value. Text output prints strings raw and
// everything else as compact JSON. TOML has no bare values, so it gets
// wrapped as value = ...
func (r *Renderer) Value(v any) error {
	switch r.format {
	case FormatText:
		if s, ok := v.(string); ok {
			_, err := fmt.Fprintln(r.out, s)
			return err
		}
		return r.line(compact(v))
	case FormatTOML:
		if _, ok := v.(map[string]any); !ok {
			v = map[string]any{"value": v}
		}
	}
	return r.structured(v)
}

// Mapping renders a whole key-value mapping. Text output is one
// key = <json> line per key in sorted order.
func (r *Renderer) Mapping(m map[string]any) error {
	if r.format != FormatText {
		return r.structured(m)
	}

	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := r.line(fmt.Sprintf("%s = %s", r.styles.Key.Render(k), compact(m[k]))); err != nil {
			return err
		}
	}
	return nil
}

// Structured encodes v in the renderer's format. Text falls back to
// indented JSON.
func (r *Renderer) Structured(v any) error {
	return r.structured(v)
}

func (r *Renderer) structured(v any) error {
	var (
		out []byte
		err error
	)

	switch r.format {
	case FormatYAML:
		out, err = yaml.Marshal(v)
	case FormatTOML:
		out, err = toml.Marshal(dropNulls(v))
	default:
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to render %s output", r.format)
	}

	_, err = r.out.Write(out)
	return err
}

func (r *Renderer) line(s string) error {
	_, err := fmt.Fprintln(r.out, s)
	return err
}

func compact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// dropNulls removes nil map entries and array elements, which TOML
// cannot represent
func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if e != nil {
				out[k] = dropNulls(e)
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			if e != nil {
				out = append(out, dropNulls(e))
			}
		}
		return out
	default:
		return v
	}
}
