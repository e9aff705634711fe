// Package tree prints an indented, depth-first listing of a directory subtree.
package tree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// indentUnit is repeated once per nesting level.
	indentUnit = "  "

	headerLineFormat    = "📂 Project directory: %s\n\n"
	directoryLineFormat = "%s📁 %s/\n"
	fileLineFormat      = "%s📄 %s\n"

	// errorReadDirectoryFormat is used when a directory cannot be listed for a reason other than permissions.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorWriteLineFormat is used when the output writer rejects a line.
	errorWriteLineFormat = "writing entry %s: %w"
	// errorWriteHeaderFormat is used when the header cannot be written.
	errorWriteHeaderFormat = "writing header for %s: %w"
	// errorNegativeDepthFormat rejects depths that cannot be rendered as indentation.
	errorNegativeDepthFormat = "invalid depth %d for %s"
)

// PrinterOptions configures a Printer. Zero values select the host
// filesystem, standard output and no diagnostics.
type PrinterOptions struct {
	FileSystem afero.Fs
	Output     io.Writer
	// SkipDirectory is called for every directory whose listing was denied.
	SkipDirectory func(path string, cause error)
}

// Printer writes one line per visited entry, pre-order, sorted by name.
type Printer struct {
	fileSystem    afero.Fs
	output        io.Writer
	skipDirectory func(path string, cause error)
}

// NewPrinter returns a Printer using the provided options.
func NewPrinter(options PrinterOptions) *Printer {
	printer := &Printer{
		fileSystem:    options.FileSystem,
		output:        options.Output,
		skipDirectory: options.SkipDirectory,
	}
	if printer.fileSystem == nil {
		printer.fileSystem = afero.NewOsFs()
	}
	if printer.output == nil {
		printer.output = os.Stdout
	}
	if printer.skipDirectory == nil {
		printer.skipDirectory = func(string, error) {}
	}
	return printer
}

// Run prints the header for rootPath followed by its full listing at depth zero.
func (printer *Printer) Run(rootPath string, ignoreSet IgnoreSet) error {
	if _, writeError := fmt.Fprintf(printer.output, headerLineFormat, rootPath); writeError != nil {
		return fmt.Errorf(errorWriteHeaderFormat, rootPath, writeError)
	}
	return printer.ListDirectory(rootPath, ignoreSet, 0)
}

// ListDirectory prints the entries of path indented by depth levels and
// descends into every directory whose name is not in ignoreSet.
// A nil ignoreSet selects DefaultIgnoreSet.
//
// A directory that cannot be listed because of missing permissions
// contributes no lines and is not reported as an error. Any other listing
// failure aborts the traversal.
func (printer *Printer) ListDirectory(path string, ignoreSet IgnoreSet, depth int) error {
	if depth < 0 {
		return fmt.Errorf(errorNegativeDepthFormat, depth, path)
	}
	if ignoreSet == nil {
		ignoreSet = DefaultIgnoreSet()
	}

	entries, readDirectoryError := afero.ReadDir(printer.fileSystem, path)
	if readDirectoryError != nil {
		if errors.Is(readDirectoryError, fs.ErrPermission) {
			printer.skipDirectory(path, readDirectoryError)
			return nil
		}
		return fmt.Errorf(errorReadDirectoryFormat, path, readDirectoryError)
	}

	indentation := strings.Repeat(indentUnit, depth)
	for _, entry := range entries {
		entryName := entry.Name()
		childPath := filepath.Join(path, entryName)

		if !printer.isDirectory(childPath) {
			if _, writeError := fmt.Fprintf(printer.output, fileLineFormat, indentation, entryName); writeError != nil {
				return fmt.Errorf(errorWriteLineFormat, childPath, writeError)
			}
			continue
		}

		if ignoreSet.Contains(entryName) {
			continue
		}
		if _, writeError := fmt.Fprintf(printer.output, directoryLineFormat, indentation, entryName); writeError != nil {
			return fmt.Errorf(errorWriteLineFormat, childPath, writeError)
		}
		if listError := printer.ListDirectory(childPath, ignoreSet, depth+1); listError != nil {
			return listError
		}
	}

	return nil
}

// isDirectory follows symbolic links; an entry that cannot be inspected is not a directory.
func (printer *Printer) isDirectory(path string) bool {
	info, statError := printer.fileSystem.Stat(path)
	return statError == nil && info.IsDir()
}
