package placeholder

import (
	"sort"
	"strings"

	"github.com/featurekit/vue-feature/internal/naming"
)

// Standard keys bound for every generated file.
const (
	KeyName   = "FEATURE_NAME"
	KeyPascal = "FEATURE_PASCAL"
	KeyCamel  = "FEATURE_CAMEL"
	KeyKebab  = "FEATURE_KEBAB"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// StandardKeys lists the keys returned by Values, in a stable order.
var StandardKeys = []string{KeyName, KeyPascal, KeyCamel, KeyKebab}

// Token returns the placeholder form of key, e.g. "{{FEATURE_NAME}}".
func Token(key string) string {
	return openDelim + key + closeDelim
}

// Values binds the standard keys to the variants of a feature name.
func Values(v naming.Variants) map[string]string {
	return map[string]string{
		KeyName:   v.Original,
		KeyPascal: v.Pascal,
		KeyCamel:  v.Camel,
		KeyKebab:  v.Kebab,
	}
}

// Replace substitutes every {{KEY}} in text whose key is present in values.
// Placeholders with no mapping are left as they are.
func Replace(text string, values map[string]string) string {
	if len(values) == 0 || !strings.Contains(text, openDelim) {
		return text
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, Token(k), values[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Keys returns the distinct placeholder keys referenced by text, in the
// order they first appear.
func Keys(text string) []string {
	var keys []string
	seen := make(map[string]bool)
	for {
		start := strings.Index(text, openDelim)
		if start < 0 {
			return keys
		}
		rest := text[start+len(openDelim):]
		end := strings.Index(rest, closeDelim)
		if end < 0 {
			return keys
		}
		key := rest[:end]
		if !isKey(key) {
			text = text[start+1:]
			continue
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		text = rest[end+len(closeDelim):]
	}
}

// isKey reports whether s looks like a placeholder key: upper-case letters,
// digits and underscores. Vue interpolations such as "{{ row.name }}" are not keys.
func isKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
