package kaanon_test

import (
	"math/rand/v2"
	"testing"

	"github.com/dmitrymomot/kaanon/pkg/kaanon"
)

// fixture mirrors a trimmed real kaanon: a few generic entries and two names.
func fixture(t *testing.T) *kaanon.Dataset {
	t.Helper()
	return kaanon.MustDataset(map[string][]string{
		"item1":             {"c1", "c2"},
		"item2":             {"c1"},
		"item3":             {"c2"},
		"item4":             {"c3"},
		"Matti Meikäläinen": {"nimi"},
		"Åke Örn":           {"nimi"},
	})
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
