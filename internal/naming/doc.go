// Package naming derives the case variants of a feature name. The Pascal,
// camel, and kebab forms are computed once per run and feed both the
// template placeholders and the generated file paths.
package naming
