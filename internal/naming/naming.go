package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var caseBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// isWordSeparator reports whether r splits words.
func isWordSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// Variants holds the case forms of a feature name.
type Variants struct {
	Original string // as typed, e.g. "user-profile"
	Pascal   string // e.g. "UserProfile"
	Camel    string // e.g. "userProfile"
	Kebab    string // e.g. "user-profile"
}

// Derive computes all variants of name.
func Derive(name string) Variants {
	return Variants{
		Original: name,
		Pascal:   ToPascalCase(name),
		Camel:    ToCamelCase(name),
		Kebab:    ToKebabCase(name),
	}
}

// ToPascalCase converts a string to PascalCase.
// Examples: user -> User, user-profile -> UserProfile, user_profile list -> UserProfileList
func ToPascalCase(s string) string {
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for _, word := range strings.FieldsFunc(s, isWordSeparator) {
		first, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(lower.String(word[size:]))
	}
	return b.String()
}

// ToCamelCase converts a string to camelCase.
// Examples: user -> user, user-profile -> userProfile
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(pascal)
	return string(unicode.ToLower(first)) + pascal[size:]
}

// ToKebabCase converts a string to kebab-case. It accepts raw input as well
// as strings that are already Pascal or camel case.
// Examples: User -> user, UserProfile -> user-profile, user_profile -> user-profile
func ToKebabCase(s string) string {
	s = caseBoundary.ReplaceAllString(s, "$1-$2")

	// Runs of white space and underscores collapse to one hyphen; existing
	// hyphens are kept as they are.
	var b strings.Builder
	inRun := false
	for _, r := range s {
		if r == '_' || unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte('-')
			}
			inRun = true
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return cases.Lower(language.Und).String(b.String())
}
