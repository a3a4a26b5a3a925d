package dataset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kaanon/pkg/dataset"
)

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := dataset.NewJSONParser()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		got, err := parser.Parse(context.Background(), []byte(`{"a": ["x", "y"], "b": [], "c": null}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, got["a"])
		assert.Contains(t, got, "b")
		assert.Contains(t, got, "c")
	})

	t.Run("not a mapping", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`["a", "b"]`))
		assert.ErrorIs(t, err, dataset.ErrFailedToParseJSON)

		_, err = parser.Parse(context.Background(), []byte(`null`))
		assert.ErrorIs(t, err, dataset.ErrNotAMapping)
	})

	t.Run("tags must be strings", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`{"a": [1]}`))
		assert.ErrorIs(t, err, dataset.ErrFailedToParseJSON)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, []byte(`{}`))
		assert.ErrorIs(t, err, dataset.ErrJSONParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("json"))
		assert.True(t, parser.SupportsFileExtension(".JSON"))
		assert.False(t, parser.SupportsFileExtension("yaml"))
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := dataset.NewYAMLParser()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		got, err := parser.Parse(context.Background(), []byte("a: [x, y]\nÅke Örn:\n  - nimi\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, got["a"])
		assert.Equal(t, []string{"nimi"}, got["Åke Örn"])
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("# nothing here\n"))
		assert.ErrorIs(t, err, dataset.ErrNotAMapping)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("- a\n- b\n"))
		assert.ErrorIs(t, err, dataset.ErrFailedToParseYAML)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, []byte("a: [x]"))
		assert.ErrorIs(t, err, dataset.ErrYAMLParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("yaml"))
		assert.True(t, parser.SupportsFileExtension(".yml"))
		assert.False(t, parser.SupportsFileExtension("json"))
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &dataset.JSONParser{}, dataset.NewParserForFile("data/kaanon.json"))
	assert.IsType(t, &dataset.YAMLParser{}, dataset.NewParserForFile("kaanon.YAML"))
	assert.IsType(t, &dataset.YAMLParser{}, dataset.NewParserForFile("kaanon.yml"))
	assert.Nil(t, dataset.NewParserForFile("kaanon.txt"))
	assert.Nil(t, dataset.NewParserForFile("kaanon"))
}
