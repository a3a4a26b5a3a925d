// Package kaanon draws random, de-duplicated entries from a static tag
// dataset, the "kaanon". Every entry is a string key carrying a set of
// category tags; callers can restrict sampling to entries tagged with any of
// a set of categories.
//
// # Architecture
//
//   - Dataset is an immutable copy of the key → tags mapping, built once with
//     NewDataset (see package dataset for loading it from JSON or YAML).
//   - Candidates selects the matching keys and shuffles them with a Source.
//     The default Source is the global math/rand/v2 generator; tests inject a
//     seeded *rand.Rand.
//   - Iterator owns one shuffled candidate list and pops from it on Next and
//     Take. A Mapper turns each key into the result type and also supplies the
//     value returned once the list is empty.
//   - NewNames and NewEmails are iterators pre-bound to NameCategory and a
//     formatting mapper. Sample, SampleNames and SampleEmails are one-shot
//     wrappers around Take.
//
// Nothing in the package returns an error while iterating. Exhaustion is
// observable through Done and through the mapper's exhaustion value.
//
// # Usage
//
//	d := kaanon.MustDataset(map[string][]string{
//	    "Matti Meikäläinen": {"nimi"},
//	    "Åke Örn":           {"nimi"},
//	    "sauna":             {"paikka"},
//	})
//
//	emails := kaanon.NewEmails(d, "example.org")
//	first := emails.Next()                  // e.g. "ake.orn@example.org"
//	rest := emails.Take(kaanon.Unbounded)   // remaining addresses
//	_ = emails.Next()                       // "anonymous@example.org"
//
//	places := kaanon.Sample(d, kaanon.Count(3), kaanon.WithCategories("paikka"))
//
// Custom result types use New with a Mapper that handles ok == false:
//
//	it := kaanon.New(d, func(key string, ok bool) int {
//	    if !ok {
//	        return -1
//	    }
//	    return len(key)
//	})
package kaanon
