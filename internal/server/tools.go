package server

import "github.com/ironsheep/region-locator-mcp/internal/detection"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func thresholdProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Binarization level applied to the smoothed gradient (0-255). Defaults to the server's configured threshold, normally 70. Lower values find fainter patterns.",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and bit depth. The decoded image is cached for subsequent region tools.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Region Localization
		{
			Name:        "region_locate",
			Description: "Locate the single dominant high-contrast region (such as a printed barcode or QR code) in an image. Returns the bounding rectangle with fixed margins, or found=false when no region survives the threshold.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"threshold": thresholdProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "region_mask",
			Description: "Return the dilated binary mask of the dominant region as a black and white base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"threshold": thresholdProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "region_annotate",
			Description: "Locate the dominant region and return the image with the region outlined, as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"threshold": thresholdProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Outline color in hex format (default: server's configured color, normally #00FF00)",
					},
					"line_width": map[string]interface{}{
						"type":        "integer",
						"description": "Outline thickness in pixels (default 2)",
						"default":     2,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "region_crop",
			Description: "Locate the dominant region and return it cropped from the image as base64 PNG. Use this to examine the pattern more closely.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"threshold": thresholdProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},

		// Pipeline Inspection
		{
			Name:        "region_stage_preview",
			Description: "Render one intermediate stage of the localization pipeline as a grayscale base64 PNG. Useful for understanding why a region was or was not found.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"threshold": thresholdProperty(),
					"stage": map[string]interface{}{
						"type":        "string",
						"enum":        stageEnum(),
						"description": "Pipeline stage to render",
					},
				},
				"required": []string{"path", "stage"},
			},
		},
		{
			Name:        "region_stage_stats",
			Description: "Summarize the values of one pipeline stage (min, max, mean, standard deviation, median, percentiles and how many samples reach the threshold). The smoothed stage helps choose a threshold.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"threshold": thresholdProperty(),
					"stage": map[string]interface{}{
						"type":        "string",
						"enum":        stageEnum(),
						"description": "Pipeline stage to summarize (default smoothed)",
						"default":     defaultStatsStage,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_luminance_histogram",
			Description: "Histogram of the contrast-stretched luminance the localization pipeline starts from.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"bins": map[string]interface{}{
						"type":        "integer",
						"description": "Number of equal-width bins over 0-255 (default 64, max 256)",
						"default":     64,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

func stageEnum() []string {
	names := make([]string, len(detection.StageNames))
	copy(names, detection.StageNames)
	return names
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
