// Package dataset loads a kaanon dataset, a mapping of entry keys to
// category tags, from JSON or YAML.
//
// Parsers turn raw bytes into a map[string][]string; adapters decide where
// the bytes come from (a file on disk, an fs.FS such as embed.FS, or an
// in-memory map). Load combines an adapter with kaanon.NewDataset:
//
//	d, err := dataset.LoadFile(ctx, "kaanon.json", dataset.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	names := kaanon.NewNames(d)
//
// Both formats expect the same shape:
//
//	{"Matti Meikäläinen": ["nimi"], "sauna": ["paikka", "asia"]}
//
// Errors are package sentinels joined with the underlying cause, so
// errors.Is works against both.
package dataset
