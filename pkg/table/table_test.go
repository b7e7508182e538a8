package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAsTable(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderAsTable(&buf, map[string]interface{}{
			"backend": "std",
			"async":   false,
			"count":   100,
			"hidden":  "x",
		}, []string{"backend", "count", "async"})
		require.NoError(t, err)

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Less(t, strings.Index(out, "backend"), strings.Index(out, "count"))
		assert.Less(t, strings.Index(out, "count"), strings.Index(out, "async"))
		assert.Contains(t, out, "false")
	})

	t.Run("list", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderAsTable(&buf, []map[string]interface{}{
			{"point": "COUNTER", "held": false},
			{"point": "QUEUE", "held": true},
		}, []string{"point", "held"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "COUNTER")
		assert.Contains(t, buf.String(), "QUEUE")
	})

	t.Run("empty list keeps header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderAsTable(&buf, []map[string]interface{}{}, []string{"point"}))
		assert.Contains(t, strings.ToUpper(buf.String()), "POINT")
	})

	t.Run("unsupported", func(t *testing.T) {
		assert.Error(t, RenderAsTable(&bytes.Buffer{}, 42, nil))
	})
}
