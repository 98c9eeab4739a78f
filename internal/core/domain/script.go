package domain

import "time"

// Script represents a stored vault entry with metadata.
// It is the canonical representation after naming and writing.
type Script struct {
	// ID is the unique identifier for the script.
	ID string

	// SourceID links to the Source that produced this script.
	SourceID string

	// Name is the final file name including extension.
	Name string

	// Category is the classified topic label, empty when the name
	// came from an extracted function name or a fallback seed.
	Category string

	// Extension is the detected file extension including the dot.
	Extension string

	// URI is the original location the script was fetched from.
	URI string

	// Path is the location within the vault, relative to the vault root.
	Path string

	// Size is the content length in bytes.
	Size int64

	// CreatedAt is when the script was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the script was last updated.
	UpdatedAt time.Time
}

// ScriptName is the classifier's output: a filesystem-safe base name
// and a detected extension. It has no identity beyond the call that
// produced it.
type ScriptName struct {
	// Base is the sanitised name without extension, never empty,
	// at most 100 characters.
	Base string

	// Extension includes the leading dot (".ps1", ".py", ...).
	Extension string

	// Category is the rule-table category that named the script,
	// empty for function-name and fallback outcomes.
	Category string
}

// FileName returns the combined file name. The total never exceeds
// 104 characters.
func (n ScriptName) FileName() string {
	return n.Base + n.Extension
}
