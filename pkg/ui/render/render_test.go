package render

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T, format string) (*Renderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r, err := New(&buf, format, nil)
	require.NoError(t, err)
	return r, &buf
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestValue(t *testing.T) {
	tests := []struct {
		name   string
		format string
		value  any
		want   string
	}{
		{"text_string_raw", FormatText, "hello", "hello\n"},
		{"text_number", FormatText, float64(1), "1\n"},
		{"text_object", FormatText, map[string]any{"a": true}, `{"a":true}` + "\n"},
		{"text_null", FormatText, nil, "null\n"},
		{"json_string", FormatJSON, "hello", `"hello"` + "\n"},
		{"json_object", FormatJSON, map[string]any{"a": float64(1)}, "{\n  \"a\": 1\n}\n"},
		{"yaml_list", FormatYAML, []any{"a", "b"}, "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newRenderer(t, tt.format)
			require.NoError(t, r.Value(tt.value))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestValue_TOMLWrapsScalars(t *testing.T) {
	r, buf := newRenderer(t, FormatTOML)
	require.NoError(t, r.Value("hello"))
	assert.Contains(t, buf.String(), "value = ")
	assert.Contains(t, buf.String(), "hello")
}

func TestMapping(t *testing.T) {
	m := map[string]any{
		"b":    "two",
		"a":    float64(1),
		"null": nil,
	}

	t.Run("text_sorted", func(t *testing.T) {
		r, buf := newRenderer(t, FormatText)
		require.NoError(t, r.Mapping(m))
		assert.Equal(t, "a = 1\nb = \"two\"\nnull = null\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		r, buf := newRenderer(t, FormatYAML)
		require.NoError(t, r.Mapping(m))
		assert.Equal(t, "a: 1\nb: two\n\"null\": null\n", buf.String())
	})

	t.Run("toml_drops_nulls", func(t *testing.T) {
		r, buf := newRenderer(t, FormatTOML)
		require.NoError(t, r.Mapping(m))
		assert.Contains(t, buf.String(), "b = ")
		assert.Contains(t, buf.String(), "two")
		assert.NotContains(t, buf.String(), "null")
	})

	t.Run("json", func(t *testing.T) {
		r, buf := newRenderer(t, FormatJSON)
		require.NoError(t, r.Mapping(m))
		assert.JSONEq(t, `{"a":1,"b":"two","null":null}`, buf.String())
	})
}

func TestDropNulls(t *testing.T) {
	in := map[string]any{
		"keep": []any{float64(1), nil, map[string]any{"x": nil, "y": "z"}},
		"drop": nil,
	}

	assert.Equal(t, map[string]any{
		"keep": []any{float64(1), map[string]any{"y": "z"}},
	}, dropNulls(in))
}
