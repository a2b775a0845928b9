// Package canvas provides a 2D drawing canvas with legacy partial-save
// semantics over an immediate-mode rendering backend.
//
// # Overview
//
// The central type is Canvas. It wraps a Backend (a raster surface with its
// own monolithic save/restore, transform, and clip state) and layers on the
// ability to preserve either the transform or the clip across a Save/Restore
// pair. The backend only supports all-or-nothing restore, so Canvas tracks
// partial save frames outside the backend and replays recorded clip
// operations after a backend restore to reconstruct the requested state.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	c := canvas.New(512, 512)
//
//	// SaveMatrix present, SaveClip absent: the transform is rolled back
//	// on Restore while clip mutations made inside the frame survive it.
//	c.Save(canvas.SaveMatrix)
//	c.Translate(64, 64)
//	c.ClipRect(canvas.RectXYWH(0, 0, 256, 256), canvas.ClipIntersect)
//	c.Restore()
//
// # Save Flags
//
// The flag convention is inherited from a legacy API and is inverted
// relative to intuition: a flag that is present requests the ordinary
// rollback of that aspect, while a flag that is absent asks the canvas to
// keep the aspect's in-frame mutations alive across the restore. See
// SaveFlags.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Backend, Path, Paint, Matrix, Rect, RRect
//   - Internal: raster (coverage rasterization), clip (device clip region)
//   - render: render-target abstraction (CPU pixmaps, device plumbing)
//   - text: font faces, shaping, and positioned glyph runs
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians unless noted otherwise
package canvas
