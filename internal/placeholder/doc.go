// Package placeholder substitutes {{KEY}} tokens in template text. It is a
// literal, single-pass replacement: no escaping, no conditionals, and
// inserted values are never expanded again.
package placeholder
