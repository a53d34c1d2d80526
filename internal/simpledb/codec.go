package simpledb

import (
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/palettes/pkg/errors"
)

// Codec turns one kind's collection into bytes and back.
//
// Decode must treat nil or empty input as an empty collection and must
// return a non-nil slice on success.
type Codec[T any] interface {
	Encode(records []T) ([]byte, error)
	Decode(data []byte) ([]T, error)
}

// BSON stores a collection as {"items": [...]}. BSON needs a document at
// the top level, hence the envelope.
func BSON[T any]() Codec[T] {
	return bsonCodec[T]{}
}

type bsonCodec[T any] struct{}

type bsonEnvelope[T any] struct {
	Items []T `bson:"items"`
}

func (bsonCodec[T]) Encode(records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	data, err := bson.Marshal(bsonEnvelope[T]{Items: records})
	if err != nil {
		return nil, errors.WrapFail(err, "marshal bson")
	}
	return data, nil
}

func (bsonCodec[T]) Decode(data []byte) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	var env bsonEnvelope[T]
	if err := bson.Unmarshal(data, &env); err != nil {
		return nil, errors.WrapFail(err, "unmarshal bson")
	}

	if env.Items == nil {
		return []T{}, nil
	}
	return env.Items, nil
}

// YAML stores a collection as a plain YAML sequence. Handy when the
// backend is a file meant to be read or edited by people.
func YAML[T any]() Codec[T] {
	return yamlCodec[T]{}
}

type yamlCodec[T any] struct{}

func (yamlCodec[T]) Encode(records []T) (_ []byte, err error) {
	if records == nil {
		records = []T{}
	}

	// yaml.v3 panics instead of failing on kinds it has no representation for.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Failf("marshal yaml: %v", r)
		}
	}()

	data, err := yaml.Marshal(records)
	if err != nil {
		return nil, errors.WrapFail(err, "marshal yaml")
	}
	return data, nil
}

func (yamlCodec[T]) Decode(data []byte) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapFail(err, "unmarshal yaml")
	}

	if records == nil {
		return []T{}, nil
	}
	return records, nil
}
