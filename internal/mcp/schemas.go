package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// processQueryTool returns the tool definition for process_query
func processQueryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "process_query",
		Description: "Process a natural-language query through the semantic pipeline: analysis, knowledge-base matching, query enhancement, and recommendations",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language query to process",
				},
				"user_context": map[string]interface{}{
					"type":        "object",
					"description": "Optional per-user context carried into enhancement and recommendations",
					"properties": map[string]interface{}{
						"answers": map[string]interface{}{
							"type":        "object",
							"description": "Answers to earlier contextual questions, keyed by question step (e.g. 'context', 'outcome')",
							"additionalProperties": map[string]interface{}{
								"type": "string",
							},
						},
						"preferences": map[string]interface{}{
							"type":        "object",
							"description": "Stable user preferences, keyed by preference name",
							"additionalProperties": map[string]interface{}{
								"type": "string",
							},
						},
					},
				},
			},
			Required: []string{"query"},
		},
	}
}

// getSearchPatternsTool returns the tool definition for get_search_patterns
func getSearchPatternsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_search_patterns",
		Description: "Summarize the session's search history: preferred domains, total searches, and average confidence",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report server health: knowledge-base readiness, degraded mode, and session counters",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
