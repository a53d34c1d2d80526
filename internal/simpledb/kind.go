package simpledb

import "github.com/nikmy/palettes/pkg/errors"

// Kind describes one logical record type: the tag its collection is stored
// under, how to get a record's primary key and how to serialize the
// collection.
type Kind[T any, K comparable] struct {
	Tag   string
	Key   func(T) K
	Codec Codec[T]
}

// NewKind builds a Kind with the BSON codec.
func NewKind[T any, K comparable](tag string, key func(T) K) Kind[T, K] {
	return Kind[T, K]{Tag: tag, Key: key, Codec: BSON[T]()}
}

func (k Kind[T, K]) WithCodec(c Codec[T]) Kind[T, K] {
	k.Codec = c
	return k
}

func (k Kind[T, K]) validate() error {
	switch {
	case k.Tag == "":
		return errors.Error("kind tag is empty")
	case k.Key == nil:
		return errors.Errorf("kind %q has no key func", k.Tag)
	case k.Codec == nil:
		return errors.Errorf("kind %q has no codec", k.Tag)
	}
	return nil
}
