// Package render rasterizes solved scenes to PNG sketches.
//
// The renderer fits the scene's world bounds into the canvas with a
// uniform scale (margin included), draws polygons, infinite lines,
// segments and measures, then the points themselves: filled markers for
// settled points, hollow markers for points still moving. The optional
// heatmap underlay plots every candidate cell from the most recent pass,
// colored from cold to hot by its normalized score, so the shape of each
// point's constraint landscape is visible around it.
//
// Geometry is drawn supersampled and downscaled with Catmull-Rom
// resampling; labels are set in the embedded Go Regular face.
package render
