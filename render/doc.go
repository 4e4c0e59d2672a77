// Package render formats a decoded Hashiwokakero solution back into the
// module's output format: lines of space-separated single-character
// tokens, one per grid cell — the island's digit, '-'/'=' for a
// single/double horizontal bridge, '|'/'$' for a single/double vertical
// bridge, and '0' for empty. Factored out of the orchestration façade the
// way lvlath factors matrix converters out of core.
package render
