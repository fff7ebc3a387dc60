package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "screenshot_dimensions",
			Description: "List the width and height of every screenshot in a directory whose file name matches a glob pattern. Files are reported in name order; unreadable files are reported with their error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to scan. Defaults to the configured source directory",
					},
					"pattern": map[string]interface{}{
						"type":        "string",
						"description": "File name glob. Default Screenshot_*.jpg",
						"default":     "Screenshot_*.jpg",
					},
				},
			},
		},
		{
			Name:        "feature_graphic",
			Description: "Cover-crop a screenshot to the target aspect ratio and resize it to an exact banner size, overwriting the output file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Screenshot to crop, absolute or relative to the configured source directory",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Destination file; the extension selects the format. Defaults to feature-graphic.png in the source directory",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels. Default 1024",
						"default":     1024,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels. Default 500",
						"default":     500,
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"description": "Resampling filter",
						"enum":        []string{"lanczos", "catmullrom", "mitchell", "linear", "box", "nearest"},
						"default":     "lanczos",
					},
					"gravity": map[string]interface{}{
						"type":        "string",
						"description": "Crop placement: center, or smart to follow the most detailed region",
						"enum":        []string{"center", "smart"},
						"default":     "center",
					},
					"palette": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant output colors to report. Default 0",
						"default":     0,
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
