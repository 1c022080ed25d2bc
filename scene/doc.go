// Package scene builds and animates the backdrop: a clustered point cloud, a sparse proximity
// graph drawn as line segments, and a few floating wireframe solids viewed by a perspective camera.
//
// All geometry is produced once per mount. Animation only rewrites transforms (and, on theme
// change, the point color buffer); nothing is regenerated per frame.
package scene
