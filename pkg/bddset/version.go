// Package bddset compiles set-cardinality constraints into reduced
// ordered binary decision diagrams.
//
// Version: 0.3.0
//
// The package provides the diagram manager, the replayable value cache,
// bound-consistency validation, the Hawkins-Lagoon-Stuckey variable
// ordering, and the cardinality and lexicographic diagram builders used
// by set-constraint propagators.
package bddset

// Version represents the current version of the bddset compiler.
const Version = "0.3.0"

// VersionInfo provides detailed version information.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GoVersion: "1.25+",
	}
}
