// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// MergeStrategy decides what happens to an imported entry that duplicates an
// existing one.
type MergeStrategy string

const (
	MergeSkip    MergeStrategy = "skip"
	MergeReplace MergeStrategy = "replace"
	MergeMerge   MergeStrategy = "merge"
)

// ParseMergeStrategy parses a strategy name. An empty name means [MergeSkip].
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	switch MergeStrategy(s) {
	case "", MergeSkip:
		return MergeSkip, nil
	case MergeReplace:
		return MergeReplace, nil
	case MergeMerge:
		return MergeMerge, nil
	default:
		return "", fmt.Errorf("unknown merge strategy %q", s)
	}
}

// ImportOptions configures an import run.
type ImportOptions struct {
	Strategy MergeStrategy
	// DryRun decrypts and classifies every entry but writes nothing.
	DryRun bool
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Total      int           `json:"total"`
	Imported   int           `json:"imported"`
	Skipped    int           `json:"skipped"`
	Duplicates int           `json:"duplicates"`
	Failed     int           `json:"failed"`
	Errors     []EntryError  `json:"errors,omitempty"`
	Strategy   MergeStrategy `json:"strategy"`
	DryRun     bool          `json:"dryRun"`
}

// EntryError describes why one entry of an import could not be processed.
// Index is the zero-based position in the export file.
type EntryError struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Error string `json:"error"`
}

func (e EntryError) String() string {
	return fmt.Sprintf("entry #%d (%s): %s", e.Index, e.Title, e.Error)
}
