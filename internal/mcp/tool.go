package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docsight/docsight/internal/docindex"
)

// AddFileDocsTool registers the javadoc_file_docs tool with an MCP server.
// This function is composable - it can be combined with other tool
// registrations.
func AddFileDocsTool(s *server.MCPServer, service *docindex.Service) {
	tool := mcp.NewTool(
		"javadoc_file_docs",
		mcp.WithDescription("Extract the structured Javadoc documentation of a Java source file: class comment, methods, fields, and enum constants with their parsed tag tables."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path to the Java source file")),
	)

	s.AddTool(tool, createFileDocsHandler(service))
}

// AddSymbolAtTool registers the javadoc_symbol_at tool with an MCP server.
func AddSymbolAtTool(s *server.MCPServer, service *docindex.Service) {
	tool := mcp.NewTool(
		"javadoc_symbol_at",
		mcp.WithDescription("Find the method or constructor enclosing a line in a Java source file and return its documentation. A line between declarations yields an empty result rather than an error."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path to the Java source file")),
		mcp.WithNumber("line",
			mcp.Required(),
			mcp.Description("1-indexed line number of the cursor")),
	)

	s.AddTool(tool, createSymbolAtHandler(service))
}

func createFileDocsHandler(service *docindex.Service) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, errResult := stringArg(request, "path")
		if errResult != nil {
			return errResult, nil
		}

		doc, err := service.FileDocs(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("documentation extraction failed: %w", err)
		}

		jsonData, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

func createSymbolAtHandler(service *docindex.Service) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, errResult := stringArg(request, "path")
		if errResult != nil {
			return errResult, nil
		}

		argsMap, _ := request.Params.Arguments.(map[string]interface{})
		line, ok := argsMap["line"].(float64)
		if !ok || line < 1 {
			return mcp.NewToolResultError("line parameter must be a positive number"), nil
		}

		member, found, err := service.SymbolAt(ctx, path, int(line))
		if err != nil {
			return nil, fmt.Errorf("symbol lookup failed: %w", err)
		}

		response := map[string]interface{}{"found": found}
		if found {
			response["member"] = member
		}

		jsonData, err := json.Marshal(response)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

// stringArg extracts a required string argument, returning a tool error
// result when it is missing or empty.
func stringArg(request mcp.CallToolRequest, key string) (string, *mcp.CallToolResult) {
	argsMap, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", mcp.NewToolResultError("invalid arguments format")
	}
	value, ok := argsMap[key].(string)
	if !ok || value == "" {
		return "", mcp.NewToolResultError(key + " parameter is required")
	}
	return value, nil
}
