package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/store-art/internal/feature"
	"github.com/ironsheep/store-art/internal/imaging"
	"github.com/ironsheep/store-art/internal/lister"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke.
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.WithField("tool", params.Name).WithError(err).Warn("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "screenshot_dimensions":
		return s.handleScreenshotDimensions(args)
	case "feature_graphic":
		return s.handleFeatureGraphic(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes optional tool arguments; absent arguments are allowed.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

type screenshotDimensionsArgs struct {
	Dir     string `json:"dir"`
	Pattern string `json:"pattern"`
}

func (s *Server) handleScreenshotDimensions(args json.RawMessage) (interface{}, error) {
	var a screenshotDimensionsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Dir == "" {
		a.Dir = s.base.SourceDir
	}
	if a.Pattern == "" {
		a.Pattern = s.base.Pattern
	}
	return lister.List(a.Dir, a.Pattern, s.log)
}

type featureGraphicArgs struct {
	Source  string `json:"source"`
	Output  string `json:"output"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Filter  string `json:"filter"`
	Gravity string `json:"gravity"`
	Palette int    `json:"palette"`
}

func (s *Server) handleFeatureGraphic(args json.RawMessage) (interface{}, error) {
	var a featureGraphicArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	cfg := s.base
	if a.Source != "" {
		cfg.SourceFile = a.Source
	}
	if a.Output != "" {
		cfg.OutputPath = a.Output
	}
	if a.Width != 0 {
		cfg.Target.Width = a.Width
	}
	if a.Height != 0 {
		cfg.Target.Height = a.Height
	}
	if a.Filter != "" {
		cfg.Filter = a.Filter
	}
	if a.Gravity != "" {
		g, err := imaging.ParseGravity(a.Gravity)
		if err != nil {
			return nil, err
		}
		cfg.Gravity = g
	}

	return feature.Generate(cfg, feature.Options{Palette: a.Palette}, s.log)
}
