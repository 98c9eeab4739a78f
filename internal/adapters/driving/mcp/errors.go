// Package mcp provides an MCP (Model Context Protocol) server adapter
// for ScriptVault. It lets AI assistants search and read vault scripts.
package mcp

import "errors"

// ErrMissingVaultService is returned when the vault service is not provided.
var ErrMissingVaultService = errors.New("mcp: vault service is required")
