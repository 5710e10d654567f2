package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/region-locator-mcp/internal/detection"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{
		"image_load",
		"image_dimensions",
		"region_locate",
		"region_mask",
		"region_annotate",
		"region_crop",
		"region_stage_preview",
		"region_stage_stats",
		"image_luminance_histogram",
	}
	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Equal(t, want, names)
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			assert.NotEmpty(t, tool.Description)
			assert.Equal(t, "object", tool.InputSchema["type"])

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			require.True(t, ok, "properties must be an object")
			assert.Contains(t, props, "path")

			required, ok := tool.InputSchema["required"].([]string)
			require.True(t, ok)
			assert.Contains(t, required, "path")
			for _, r := range required {
				assert.Contains(t, props, r, "required property %q is not defined", r)
			}
		})
	}
}

func TestToolDefinitions_Executable(t *testing.T) {
	s := New(nil, nil)
	for _, tool := range GetToolDefinitions() {
		_, err := s.executeTool(tool.Name, []byte(`{}`))
		require.Error(t, err, tool.Name)
		assert.NotContains(t, err.Error(), "unknown tool", "tool %s has no handler", tool.Name)
	}
}

func TestToolDefinitions_StageEnum(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		props := tool.InputSchema["properties"].(map[string]interface{})
		stage, ok := props["stage"].(map[string]interface{})
		if !ok {
			continue
		}
		assert.Equal(t, detection.StageNames, stage["enum"], tool.Name)
	}
}

func TestHandleToolsList(t *testing.T) {
	resp := New(nil, nil).handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	require.NotNil(t, resp)
	assert.Nil(t, resp.Error)
	result := resp.Result.(map[string]interface{})
	tools, ok := result["tools"].([]Tool)
	require.True(t, ok)
	assert.Len(t, tools, 9)
}
