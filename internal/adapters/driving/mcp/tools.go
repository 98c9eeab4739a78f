package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchScriptsInput is the input schema for the search_scripts tool.
type SearchScriptsInput struct {
	Query    string `json:"query,omitempty" jsonschema:"substring matched against script names (case-insensitive)"`
	Category string `json:"category,omitempty" jsonschema:"restrict results to one category"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchScriptsOutput is the output schema for the search_scripts tool.
type SearchScriptsOutput struct {
	Scripts []ScriptOutput `json:"scripts"`
	Count   int            `json:"count"`
}

// ScriptOutput represents a single vault script.
type ScriptOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	URI      string `json:"uri"`
	Size     int64  `json:"size"`
}

// GetScriptInput is the input schema for the get_script tool.
type GetScriptInput struct {
	ID string `json:"id" jsonschema:"the script ID to retrieve"`
}

// GetScriptOutput is the output schema for the get_script tool.
type GetScriptOutput struct {
	Script  ScriptOutput `json:"script"`
	Content string       `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_scripts",
		Description: "Search the vault's stored scripts by name and category",
	}, s.handleSearchScripts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_script",
		Description: "Retrieve a stored script's metadata and content",
	}, s.handleGetScript)
}

// handleSearchScripts handles the search_scripts tool invocation.
func (s *Server) handleSearchScripts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchScriptsInput,
) (*mcp.CallToolResult, SearchScriptsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	scripts, err := s.ports.Vault.List(ctx, input.Category)
	if err != nil {
		return nil, SearchScriptsOutput{}, err
	}

	query := strings.ToLower(input.Query)
	output := SearchScriptsOutput{Scripts: []ScriptOutput{}}
	for i := range scripts {
		if query != "" && !strings.Contains(strings.ToLower(scripts[i].Name), query) {
			continue
		}
		output.Scripts = append(output.Scripts, ScriptOutput{
			ID:       scripts[i].ID,
			Name:     scripts[i].Name,
			Category: scripts[i].Category,
			URI:      scripts[i].URI,
			Size:     scripts[i].Size,
		})
		if len(output.Scripts) == limit {
			break
		}
	}

	output.Count = len(output.Scripts)
	return nil, output, nil
}

// handleGetScript handles the get_script tool invocation.
func (s *Server) handleGetScript(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetScriptInput,
) (*mcp.CallToolResult, GetScriptOutput, error) {
	script, err := s.ports.Vault.Get(ctx, input.ID)
	if err != nil {
		return nil, GetScriptOutput{}, err
	}

	content, err := s.ports.Vault.Content(ctx, input.ID)
	if err != nil {
		return nil, GetScriptOutput{}, err
	}

	output := GetScriptOutput{
		Script: ScriptOutput{
			ID:       script.ID,
			Name:     script.Name,
			Category: script.Category,
			URI:      script.URI,
			Size:     script.Size,
		},
		Content: string(content),
	}
	return nil, output, nil
}
