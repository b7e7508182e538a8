//go:build !syncx_nonames

package syncx

// NamesEnabled is true if points remember their names.
const NamesEnabled = true
