package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ecoquery/ecoquery-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeNotReady      = -32001 // Knowledge base still loading
	ErrorCodeEmptyQuery    = -32004 // Query parameter is empty
)

// handleProcessQuery handles the process_query tool invocation
func (s *Server) handleProcessQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	userCtx := parseUserContext(args["user_context"])

	result, err := s.engine.ProcessQuery(ctx, query, userCtx)
	switch {
	case errors.Is(err, types.ErrNotReady):
		return nil, newMCPError(ErrorCodeNotReady, "knowledge base is still loading, retry shortly", nil)
	case err != nil:
		return nil, newMCPError(ErrorCodeInternalError, "query processing failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(formatResult(result))), nil
}

// handleGetSearchPatterns handles the get_search_patterns tool invocation
func (s *Server) handleGetSearchPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	patterns := s.engine.GetSearchPatterns()

	response := map[string]interface{}{
		"preferred_domains":  patterns.PreferredDomains,
		"total_searches":     patterns.TotalSearches,
		"average_confidence": patterns.AverageConfidence,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"server":  ServerName,
		"version": ServerVersion,
		"knowledge_base": map[string]interface{}{
			"ready":    s.engine.Ready(),
			"degraded": s.engine.Degraded(),
			"entries":  s.engine.KnowledgeBaseSize(),
		},
		"session": map[string]interface{}{
			"total_searches": s.engine.GetSearchPatterns().TotalSearches,
		},
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// formatResult flattens a search result into the wire response shape.
func formatResult(result *types.SearchResult) map[string]interface{} {
	match := result.SemanticMatch

	response := map[string]interface{}{
		"original_query":       result.OriginalQuery,
		"enhanced_query":       result.EnhancedQuery,
		"confidence_score":     result.ConfidenceScore,
		"contextual_questions": result.ContextualQuestions,
		"recommended_actions":  result.RecommendedActions,
		"semantic_match": map[string]interface{}{
			"term":   match.Term,
			"type":   string(match.Type),
			"score":  match.Score,
			"domain": string(match.Entry.Domain),
		},
		"analysis": map[string]interface{}{
			"intent":         string(result.Analysis.Intent),
			"complexity":     string(result.Analysis.Complexity),
			"domain_hints":   result.Analysis.DomainHints,
			"emotional_tone": string(result.Analysis.EmotionalTone),
			"urgency_level":  string(result.Analysis.UrgencyLevel),
		},
	}

	if match.Entry.Subdomain != "" {
		semanticMatch := response["semantic_match"].(map[string]interface{})
		semanticMatch["subdomain"] = match.Entry.Subdomain
	}

	return response
}

// parseUserContext decodes the optional user_context argument. Anything
// malformed is ignored rather than rejected; context is advisory.
func parseUserContext(raw interface{}) *types.UserContext {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	userCtx := &types.UserContext{}
	userCtx.Answers = parseStringMap(obj["answers"])
	userCtx.Preferences = parseStringMap(obj["preferences"])

	if userCtx.Answers == nil && userCtx.Preferences == nil {
		return nil
	}
	return userCtx
}

// parseStringMap extracts a map of string values, skipping non-strings.
func parseStringMap(raw interface{}) map[string]string {
	obj, ok := raw.(map[string]interface{})
	if !ok || len(obj) == 0 {
		return nil
	}

	out := make(map[string]string, len(obj))
	for key, value := range obj {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}
