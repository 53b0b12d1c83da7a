package grid

import "errors"

var (
	// ErrShape is returned for non-positive row or column counts.
	ErrShape = errors.New("grid: invalid shape")

	// ErrSpacing is returned for non-positive or non-finite node spacing.
	ErrSpacing = errors.New("grid: invalid spacing")

	// ErrField is returned when a node field is missing, duplicated or of the wrong length.
	ErrField = errors.New("grid: invalid field")

	// ErrNode is returned for node ids outside the grid.
	ErrNode = errors.New("grid: node out of range")
)
