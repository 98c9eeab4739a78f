package tui

import (
	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

// categoriesLoaded carries the per-category counts into the model.
type categoriesLoaded struct {
	Counts map[string]int
	Err    error
}

// scriptsLoaded carries a category's scripts into the model.
type scriptsLoaded struct {
	Category string
	Scripts  []domain.Script
	Err      error
}

// contentLoaded carries a script's content into the model.
type contentLoaded struct {
	Script  domain.Script
	Content string
	Err     error
}
