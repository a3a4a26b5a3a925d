package kaanon

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	// AnonymousName is what NameMapper yields once the names run out.
	AnonymousName = "Anonymous User"

	// AnonymousLocalPart is the email local part used after exhaustion.
	AnonymousLocalPart = "anonymous"

	// DefaultDomain is the email domain used when none is configured.
	DefaultDomain = "example.com"
)

// Email local parts fold these vowels after lowercasing.
var vowelFolder = strings.NewReplacer("ä", "a", "ö", "o", "å", "a")

// NameMapper formats an entry as a display name: each whitespace separated
// part gets an upper-cased first letter and a lower-cased remainder, and the
// parts are joined by single spaces. Diacritics are kept. Casing follows the
// rules of tag; use language.Und when unsure.
func NameMapper(tag language.Tag) Mapper[string] {
	return func(key string, ok bool) string {
		if !ok {
			return AnonymousName
		}

		// Casers carry state, so each call gets its own.
		upper, lower := cases.Upper(tag), cases.Lower(tag)

		parts := strings.Fields(norm.NFC.String(key))
		for i, part := range parts {
			_, size := utf8.DecodeRuneInString(part)
			parts[i] = upper.String(part[:size]) + lower.String(part[size:])
		}
		return strings.Join(parts, " ")
	}
}

// EmailMapper turns an entry into an address at domain. The local part is
// the lower-cased entry with whitespace runs replaced by a dot and ä, ö, å
// folded to plain vowels. An empty domain means DefaultDomain.
func EmailMapper(domain string) Mapper[string] {
	if domain == "" {
		domain = DefaultDomain
	}
	anonymous := AnonymousLocalPart + "@" + domain

	return func(key string, ok bool) string {
		if !ok {
			return anonymous
		}

		local := cases.Lower(language.Und).String(norm.NFC.String(key))
		local = strings.Join(strings.Fields(local), ".")
		local = vowelFolder.Replace(local)

		return local + "@" + domain
	}
}
