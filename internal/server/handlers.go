package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/region-locator-mcp/internal/detection"
	"github.com/ironsheep/region-locator-mcp/internal/imaging"
)

// defaultStatsStage is the stage summarized by region_stage_stats when the
// caller names none; its values are the ones compared with the threshold.
const defaultStatsStage = "smoothed"

// defaultLineWidth is the outline thickness used by region_annotate.
const defaultLineWidth = 2

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "region_locate").
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
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Error(component, err, map[string]interface{}{"tool": params.Name})
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Runs the localization pipeline and/or imaging helpers
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Region Localization
	case "region_locate":
		return s.handleRegionLocate(args)
	case "region_mask":
		return s.handleRegionMask(args)
	case "region_annotate":
		return s.handleRegionAnnotate(args)
	case "region_crop":
		return s.handleRegionCrop(args)

	// Pipeline Inspection
	case "region_stage_preview":
		return s.handleRegionStagePreview(args)
	case "region_stage_stats":
		return s.handleRegionStageStats(args)
	case "image_luminance_histogram":
		return s.handleImageLuminanceHistogram(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string leaves the data member out.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating a missing object as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func requirePath(path string) error {
	if path == "" {
		return errors.New("path is required")
	}
	return nil
}

// locate runs the pipeline on the cached planes of path. On ErrNoRegion the
// partial result is returned with the error.
func (s *Server) locate(path string, threshold *float64, keepStages bool) (*detection.Result, error) {
	if err := requirePath(path); err != nil {
		return nil, err
	}
	planes, err := s.cache.LoadChannels(path)
	if err != nil {
		return nil, err
	}

	t := s.cfg.Threshold
	if threshold != nil {
		t = *threshold
	}
	locator := detection.NewLocator(t, s.log)
	locator.KeepStages = keepStages
	return locator.Locate(planes)
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Region Localization Handlers ===

type regionArgs struct {
	Path string `json:"path"`

	// Threshold is a pointer so an explicit 0 is distinguishable from absent.
	Threshold *float64 `json:"threshold"`
}

// regionLocateResult is the region_locate response. The embedded result is
// nil when nothing was found.
type regionLocateResult struct {
	Found     bool    `json:"found"`
	Threshold float64 `json:"threshold"`
	*detection.Result
}

func (a regionArgs) threshold(fallback float64) float64 {
	if a.Threshold != nil {
		return *a.Threshold
	}
	return fallback
}

func (s *Server) handleRegionLocate(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	res, err := s.locate(a.Path, a.Threshold, false)
	out := &regionLocateResult{Threshold: a.threshold(s.cfg.Threshold)}
	switch {
	case errors.Is(err, detection.ErrNoRegion):
		return out, nil
	case err != nil:
		return nil, err
	}
	out.Found = true
	out.Result = res
	return out, nil
}

func (s *Server) handleRegionMask(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	// An empty mask is still a valid answer.
	res, err := s.locate(a.Path, a.Threshold, false)
	if err != nil && !errors.Is(err, detection.ErrNoRegion) {
		return nil, err
	}
	return imaging.EncodeMask(res.Mask)
}

type regionAnnotateArgs struct {
	regionArgs
	Color     string `json:"color"`
	LineWidth int    `json:"line_width"`
}

func (s *Server) handleRegionAnnotate(args json.RawMessage) (interface{}, error) {
	var a regionAnnotateArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = s.cfg.OutlineColor
	}
	if a.LineWidth == 0 {
		a.LineWidth = defaultLineWidth
	}

	res, err := s.locate(a.Path, a.Threshold, false)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.AnnotateRegion(img, res.Region, a.Color, a.LineWidth)
}

type regionCropArgs struct {
	regionArgs
	Scale float64 `json:"scale"`
}

func (s *Server) handleRegionCrop(args json.RawMessage) (interface{}, error) {
	var a regionCropArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.Scale < 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", a.Scale)
	}

	res, err := s.locate(a.Path, a.Threshold, false)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CropRegion(img, res.Region, a.Scale)
}

// === Pipeline Inspection Handlers ===

type regionStageArgs struct {
	regionArgs
	Stage string `json:"stage"`
}

// stages runs the pipeline keeping every intermediate grid. Finding no
// region is not an error here since the stages explain why.
func (s *Server) stages(a regionStageArgs) (*detection.Stages, error) {
	res, err := s.locate(a.Path, a.Threshold, true)
	if err != nil && !errors.Is(err, detection.ErrNoRegion) {
		return nil, err
	}
	return res.Stages, nil
}

func (s *Server) handleRegionStagePreview(args json.RawMessage) (interface{}, error) {
	var a regionStageArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Stage == "" {
		return nil, errors.New("stage is required")
	}

	stages, err := s.stages(a)
	if err != nil {
		return nil, err
	}
	return imaging.RenderStage(stages, a.Stage)
}

type regionStageStatsResult struct {
	Stage     string  `json:"stage"`
	Threshold float64 `json:"threshold"`
	detection.GridStats
}

func (s *Server) handleRegionStageStats(args json.RawMessage) (interface{}, error) {
	var a regionStageArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Stage == "" {
		a.Stage = defaultStatsStage
	}

	stages, err := s.stages(a)
	if err != nil {
		return nil, err
	}
	g, err := stages.Float(a.Stage)
	if err != nil {
		return nil, err
	}

	t := a.threshold(s.cfg.Threshold)
	return &regionStageStatsResult{
		Stage:     a.Stage,
		Threshold: t,
		GridStats: detection.Summarize(g, t),
	}, nil
}

type imageHistogramArgs struct {
	Path string `json:"path"`
	Bins int    `json:"bins"`
}

func (s *Server) handleImageLuminanceHistogram(args json.RawMessage) (interface{}, error) {
	var a imageHistogramArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	if a.Bins == 0 {
		a.Bins = imaging.DefaultHistogramBins
	}

	planes, err := s.cache.LoadChannels(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.LuminanceHistogram(planes, a.Bins)
}
