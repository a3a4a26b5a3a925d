package kaanon

import "golang.org/x/text/language"

// NameCategory tags the entries that are person names.
const NameCategory = "nimi"

// NewNames returns an iterator of formatted display names drawn from the
// NameCategory entries. It yields AnonymousName once exhausted.
// WithCategories overrides the default category.
func NewNames(d *Dataset, opts ...Option) *Iterator[string] {
	return newIterator(d, NameMapper(language.Und), nameDefaults(), opts)
}

// NewEmails returns an iterator of synthetic email addresses at domain,
// drawn from the NameCategory entries. Once exhausted it yields
// "anonymous@" + domain. An empty domain means DefaultDomain.
func NewEmails(d *Dataset, domain string, opts ...Option) *Iterator[string] {
	return newIterator(d, EmailMapper(domain), nameDefaults(), opts)
}

func nameDefaults() []Option {
	return []Option{WithCategories(NameCategory)}
}
