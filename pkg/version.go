// Package conslaw collects conservation status of species listed in
// Vietnamese conservation law data files.
package conslaw

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
