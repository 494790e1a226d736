// Package adgen fetches a web page, extracts its readable text, asks a
// generative model for contextual advertisements or a summary, and merges
// the result into an HTML preview.
//
// This package contains domain types, interfaces and the pure text
// transformations (parsing, merging, rendering) following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, rod/).
package adgen
