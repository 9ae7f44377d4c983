package mcpserver

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// getArgsMap extracts the arguments map from an MCP tool call request.
// Returns an empty map if arguments are nil or not a map.
func getArgsMap(request mcp.CallToolRequest) map[string]any {
	if request.Params.Arguments != nil {
		if m, ok := request.Params.Arguments.(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}

// getStringParam returns a string argument and whether it was present and a string.
func getStringParam(args map[string]any, key string) (string, bool) {
	val, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// getBoolParam returns a boolean argument, or false when absent or not a bool.
func getBoolParam(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

// getPortParam returns an optional port argument. JSON numbers arrive as float64.
func getPortParam(args map[string]any, key string) (uint16, bool, error) {
	val, ok := args[key]
	if !ok || val == nil {
		return 0, false, nil
	}
	f, ok := val.(float64)
	if !ok {
		return 0, false, fmt.Errorf("%s must be a number", key)
	}
	if f != math.Trunc(f) || f < 1 || f > math.MaxUint16 {
		return 0, false, fmt.Errorf("%s must be an integer between 1 and 65535", key)
	}
	return uint16(f), true, nil
}

// marshalToolResult marshals any value to JSON and returns it as an MCP tool result.
func marshalToolResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
