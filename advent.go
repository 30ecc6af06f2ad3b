// Package advent scaffolds a local workspace for one Advent of Code puzzle.
// It fetches the puzzle page with a session cookie, extracts the article
// blocks, renders the problem statement as markdown along with the example
// inputs, and writes them next to the raw input and a stub solution file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, http/).
package advent
