package glsl

import "fmt"

// MissingEntityError reports a non-sentinel id that does not resolve in its
// owning table. It signals a corrupt pack or a producer bug; the pack must be
// fixed, retrying cannot help.
type MissingEntityError struct {
	Table string
	ID    uint32
}

func (e *MissingEntityError) Error() string {
	return fmt.Sprintf("glsl: missing %s %d", e.Table, e.ID)
}

func missingEntity[ID ~uint32](table string, id ID) *MissingEntityError {
	return &MissingEntityError{Table: table, ID: uint32(id)}
}

// ShapeError reports an operator applied with the wrong operand count or a
// variant tag no dispatcher recognizes.
type ShapeError struct {
	Detail string
}

func (e *ShapeError) Error() string {
	return "glsl: " + e.Detail
}

func shapeErrorf(format string, args ...any) *ShapeError {
	return &ShapeError{Detail: fmt.Sprintf(format, args...)}
}
