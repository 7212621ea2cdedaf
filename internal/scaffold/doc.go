// Package scaffold generates a feature: a page, optional table and form
// components, a store or composable, an API service, and type definitions.
// It powers the "vue-feature generate" command. A run builds an ordered
// Plan from the options and executes it step by step, stopping at the first
// failure.
package scaffold
