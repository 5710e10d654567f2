// Package server implements the MCP (Model Context Protocol) server for
// region localization.
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods are initialize, tools/list, tools/call and ping.
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Region Localization:
//   - region_locate: Bounding rectangle of the dominant high-contrast region
//   - region_mask: Dilated region mask as PNG
//   - region_annotate: Image with the region outlined
//   - region_crop: The region cut out of the image
//
// Pipeline Inspection:
//   - region_stage_preview: Render an intermediate stage
//   - region_stage_stats: Value distribution of a stage
//   - image_luminance_histogram: Histogram of the stretched luminance
//
// Every region tool accepts an optional threshold; without one the
// server's configured threshold applies.
//
// # Image Caching
//
// Images are cached by path together with their colour planes and reused
// across tool calls for the lifetime of the process.
//
// # Error Handling
//
// Tool failures are JSON-RPC errors with code -32000 and the Go error
// string in data. Malformed tools/call params give -32602 and unknown
// methods -32601. region_locate does not fail when nothing is found; it
// answers {"found": false}.
package server
