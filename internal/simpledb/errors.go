package simpledb

import (
	"fmt"

	"github.com/nikmy/palettes/internal/observe"
	"github.com/nikmy/palettes/pkg/errors"
)

var ErrKindRegistered = errors.Error("kind already registered")

var ErrZeroSizeObserver = observe.ErrZeroSizeObserver

// DecodingError means a partition's bytes exist but do not parse as the
// kind's collection. An empty Tag refers to the document envelope itself.
type DecodingError struct {
	Tag string
	Err error
}

func (e *DecodingError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("can't decode document: %s", e.Err)
	}
	return fmt.Sprintf("can't decode %q collection: %s", e.Tag, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// EncodingError means in-memory records could not be serialized. It
// points at a programming error in the record type, not at bad input.
type EncodingError struct {
	Tag string
	Err error
}

func (e *EncodingError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("can't encode document: %s", e.Err)
	}
	return fmt.Sprintf("can't encode %q collection: %s", e.Tag, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// NotFoundError is returned by UpdateOne when no record has the key.
type NotFoundError struct {
	Tag string
	Key any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q record with key %v not found", e.Tag, e.Key)
}

// DuplicateKeyError is returned by InsertOne when the key is taken.
type DuplicateKeyError struct {
	Tag string
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%q record with key %v already exists", e.Tag, e.Key)
}
