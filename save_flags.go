package canvas

// SaveFlags selects which aspects of canvas state a Save/Restore pair rolls
// back. The convention is inherited from a legacy API and is inverted
// relative to intuition: a flag that is PRESENT requests the ordinary
// backend rollback of that aspect, while a flag that is ABSENT asks the
// canvas to keep the aspect's in-frame mutations alive across the restore.
//
// Only Canvas.Save interprets the matrix/clip bits. The layer bits are
// accepted by SaveLayer for API compatibility.
type SaveFlags uint32

const (
	// SaveMatrix requests that the paired Restore roll the transform back.
	SaveMatrix SaveFlags = 1 << 0

	// SaveClip requests that the paired Restore roll the clip back.
	SaveClip SaveFlags = 1 << 1

	// SaveHasAlphaLayer and SaveFullColorLayer describe layer pixel needs.
	// The raster backend always allocates full-color layers, so both are
	// accepted and ignored.
	SaveHasAlphaLayer  SaveFlags = 1 << 2
	SaveFullColorLayer SaveFlags = 1 << 3

	// SaveClipToLayer restricts drawing to the layer bounds for the
	// duration of a SaveLayer frame.
	SaveClipToLayer SaveFlags = 1 << 4

	// SaveMatrixClip requests the ordinary full rollback of both aspects.
	SaveMatrixClip = SaveMatrix | SaveClip

	// SaveAll is every defined flag.
	SaveAll = SaveMatrixClip | SaveHasAlphaLayer | SaveFullColorLayer | SaveClipToLayer
)

// preserve decodes the inverted legacy convention exactly once. A missing
// bit means the aspect's in-frame mutations persist across Restore. No
// other code inspects the raw matrix/clip bits.
func (f SaveFlags) preserve() (matrix, clip bool) {
	return f&SaveMatrix == 0, f&SaveClip == 0
}

// partial reports whether a save with these flags needs bookkeeping beyond
// the backend's own save, i.e. at least one aspect must be preserved.
func (f SaveFlags) partial() bool {
	return f&SaveMatrixClip != SaveMatrixClip
}
