package entity

import "errors"

// Error sentinels shared across the model packages. Callers should match
// with errors.Is since call sites wrap these with additional context.
var (
	// ErrDuplicateEntity signals an add of an identity already present.
	ErrDuplicateEntity = errors.New("duplicate entity")
	// ErrEntityNotFound signals a replace/remove/lookup whose target is absent.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrInvalidArgument signals a malformed argument such as a non-positive
	// hour count or an end time not after the start time.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNothingToUndo signals an undo past the beginning of history.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo signals a redo past the end of history.
	ErrNothingToRedo = errors.New("nothing to redo")
)
