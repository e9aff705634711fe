// Package utils contains general helper functions used across the lsdir tool.
package utils

import "strings"

// Directory and configuration names used across the project.
const (
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// NodeModulesDirectoryName is the dependency cache directory created by npm.
	NodeModulesDirectoryName = "node_modules"
	// PythonCacheDirectoryName is the bytecode cache directory created by CPython.
	PythonCacheDirectoryName = "__pycache__"
	// LocalConfigFileName is the configuration file looked up in the working directory.
	LocalConfigFileName = ".lsdir.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".lsdir"
	// GlobalConfigFileName is the configuration file inside GlobalConfigDirectoryName.
	GlobalConfigFileName = "config.yaml"
)

const pathSegmentSeparator = "/"

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// NormalizeDirectoryName trims surrounding whitespace and trailing separators
// so that "vendor/" and " vendor " both yield "vendor".
func NormalizeDirectoryName(name string) string {
	trimmedName := strings.TrimSpace(name)
	trimmedName = strings.ReplaceAll(trimmedName, `\`, pathSegmentSeparator)
	return strings.TrimRight(trimmedName, pathSegmentSeparator)
}
