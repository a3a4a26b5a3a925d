package kaanon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kaanon/pkg/kaanon"
)

func TestNewDataset(t *testing.T) {
	t.Parallel()

	t.Run("nil map is rejected", func(t *testing.T) {
		t.Parallel()
		d, err := kaanon.NewDataset(nil)
		require.ErrorIs(t, err, kaanon.ErrNilDataset)
		assert.Nil(t, d)
	})

	t.Run("empty map is allowed", func(t *testing.T) {
		t.Parallel()
		d, err := kaanon.NewDataset(map[string][]string{})
		require.NoError(t, err)
		assert.Equal(t, 0, d.Len())
		assert.Empty(t, d.Keys())
	})

	t.Run("keys are sorted and tags deduplicated", func(t *testing.T) {
		t.Parallel()
		d, err := kaanon.NewDataset(map[string][]string{
			"b": {"x", "y", "x"},
			"a": nil,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, d.Keys())

		tags, ok := d.Tags("b")
		require.True(t, ok)
		assert.Equal(t, []string{"x", "y"}, tags)

		tags, ok = d.Tags("a")
		require.True(t, ok)
		assert.Empty(t, tags)

		_, ok = d.Tags("missing")
		assert.False(t, ok)
	})

	t.Run("source map changes do not leak in", func(t *testing.T) {
		t.Parallel()
		src := map[string][]string{"a": {"x"}}
		d := kaanon.MustDataset(src)

		src["a"][0] = "changed"
		src["b"] = []string{"x"}

		assert.True(t, d.HasTag("a", "x"))
		assert.False(t, d.HasTag("a", "changed"))
		assert.Equal(t, 1, d.Len())
	})

	t.Run("returned tags are copies", func(t *testing.T) {
		t.Parallel()
		d := kaanon.MustDataset(map[string][]string{"a": {"x"}})
		tags, _ := d.Tags("a")
		tags[0] = "y"
		assert.True(t, d.HasTag("a", "x"))
	})
}

func TestMustDataset_Panics(t *testing.T) {
	t.Parallel()
	assert.PanicsWithError(t, kaanon.ErrNilDataset.Error(), func() {
		kaanon.MustDataset(nil)
	})
}
