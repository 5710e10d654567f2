// Package imaging bridges decoded image files and the detection pipeline.
//
// It loads and caches photographs, splits them into the red, green and blue
// planes the pipeline consumes, and turns pipeline output back into images:
// outlined regions, crops, the dilated mask and previews of any intermediate
// stage. Every generated image is returned as a base64 PNG so it can travel
// inside a JSON tool response.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Images whose bounds do not
// start at the origin are rebased when split into planes.
//
// Rectangles produced by the detection package are inclusive on both
// corners: a region at X with Width W covers columns X through X+W. The
// published region carries fixed margins and may extend past the image;
// drawing and cropping clip it.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Cached images and colour planes are
// shared between callers and must not be modified. All other functions are
// stateless.
package imaging
