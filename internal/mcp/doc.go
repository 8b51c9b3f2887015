// Package mcp implements the Model Context Protocol (MCP) server for EcoQuery.
//
// The MCP server exposes three tools to AI assistants:
//   - process_query: Run a natural-language query through the semantic pipeline
//   - get_search_patterns: Summarize the session's search history
//   - get_status: Check knowledge-base readiness and session counters
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates with MCP clients via standard input/output,
// making it simple to integrate with any MCP-compatible client.
//
// # Tool: process_query
//
// Process a query through analysis, matching, enhancement, and
// recommendation generation:
//
//	Request:
//	{
//	  "name": "process_query",
//	  "arguments": {
//	    "query": "learn organic gardening",
//	    "user_context": {
//	      "answers": {"context": "home"}
//	    }
//	  }
//	}
//
//	Response:
//	{
//	  "original_query": "learn organic gardening",
//	  "enhanced_query": "learn organic gardening sustainable agriculture practices ...",
//	  "confidence_score": 0.61,
//	  "semantic_match": {
//	    "term": "organic farming",
//	    "type": "semantic",
//	    "score": 0.61,
//	    "domain": "AGRICULTURE"
//	  },
//	  "contextual_questions": [...],
//	  "recommended_actions": [...],
//	  "analysis": {
//	    "intent": "learning",
//	    "complexity": "medium",
//	    "domain_hints": ["AGRICULTURE"],
//	    "emotional_tone": "neutral",
//	    "urgency_level": "low"
//	  }
//	}
//
// # Tool: get_search_patterns
//
// No arguments. Returns the session aggregate:
//
//	{
//	  "preferred_domains": ["AGRICULTURE", "WELLNESS"],
//	  "total_searches": 12,
//	  "average_confidence": 0.58
//	}
//
// # Tool: get_status
//
// No arguments. Reports server identity, knowledge-base state (ready,
// degraded, entry count), and the session search counter.
//
// # Error Handling
//
// Handlers reject bad input with JSON-RPC style error codes: -32602 for
// invalid parameters, -32004 for an empty query, -32001 while the
// knowledge base is still loading, and -32603 for internal failures.
package mcp
