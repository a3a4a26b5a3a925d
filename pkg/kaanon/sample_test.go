package kaanon_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/kaanon/pkg/kaanon"
)

func TestSample(t *testing.T) {
	t.Parallel()
	d := fixture(t)

	assert.ElementsMatch(t, []string{"item1", "item2"}, kaanon.Sample(d, kaanon.Count(10), kaanon.WithCategories("c1")))
	assert.Empty(t, kaanon.Sample(d, kaanon.Count(10), kaanon.WithCategories("nope")))
	assert.Len(t, kaanon.Sample(d, kaanon.Count(3)), 3)
	assert.Len(t, kaanon.Sample(d, kaanon.Unbounded), 6)
}

func TestSample_Seeded(t *testing.T) {
	t.Parallel()
	d := fixture(t)

	a := kaanon.Sample(d, kaanon.Unbounded, kaanon.WithSource(seeded(5)))
	b := kaanon.Sample(d, kaanon.Unbounded, kaanon.WithSource(seeded(5)))
	assert.Equal(t, a, b)
}

func TestSampleNames(t *testing.T) {
	t.Parallel()
	d := fixture(t)

	assert.ElementsMatch(t, []string{"Matti Meikäläinen", "Åke Örn"}, kaanon.SampleNames(d, kaanon.Unbounded))
	assert.Len(t, kaanon.SampleNames(d, kaanon.Count(1)), 1)
}

func TestSampleEmails(t *testing.T) {
	t.Parallel()
	d := fixture(t)

	assert.ElementsMatch(t,
		[]string{"matti.meikalainen@example.com", "ake.orn@example.com"},
		kaanon.SampleEmails(d, kaanon.Unbounded, ""),
	)
	assert.ElementsMatch(t,
		[]string{"matti.meikalainen@custom.org", "ake.orn@custom.org"},
		kaanon.SampleEmails(d, kaanon.Count(5), "custom.org"),
	)
}

func TestSeq(t *testing.T) {
	t.Parallel()
	d := fixture(t)

	got := slices.Collect(kaanon.Seq(d, kaanon.WithCategories("c2")))
	assert.ElementsMatch(t, []string{"item1", "item3"}, got)

	var first []string
	for key := range kaanon.Seq(d) {
		first = append(first, key)
		break
	}
	assert.Len(t, first, 1)
}

func TestSeq_SingleUse(t *testing.T) {
	t.Parallel()
	seq := kaanon.Seq(fixture(t), kaanon.WithCategories("c1"))

	assert.Len(t, slices.Collect(seq), 2)
	assert.Empty(t, slices.Collect(seq))
}
