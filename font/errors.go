package font

import "errors"

// Sentinel errors for the font object graph.
var (
	// ErrGlyphNotFound is returned when a named glyph does not exist in
	// the layer.
	ErrGlyphNotFound = errors.New("glyph not found")

	// ErrDuplicateGlyph is returned when inserting a glyph whose name is
	// already taken.
	ErrDuplicateGlyph = errors.New("glyph already exists")

	// ErrLayerNotFound is returned when a named layer does not exist in
	// the font.
	ErrLayerNotFound = errors.New("layer not found")

	// ErrDuplicateLayer is returned when creating a layer whose name is
	// already taken.
	ErrDuplicateLayer = errors.New("layer already exists")

	// ErrIndexOutOfRange is returned for positional operations outside a
	// collection's bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrAlreadyAttached is returned when adopting an object that is
	// still attached elsewhere.
	ErrAlreadyAttached = errors.New("object is already attached")

	// ErrInvalidLibValue is returned when a lib document or value cannot
	// be encoded as JSON.
	ErrInvalidLibValue = errors.New("invalid lib value")

	// ErrDefaultLayer is returned when deleting the font's default
	// layer.
	ErrDefaultLayer = errors.New("cannot delete default layer")
)
