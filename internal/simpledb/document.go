package simpledb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nikmy/palettes/pkg/errors"
)

// DocumentKey is the single backend key the whole database lives under.
const DocumentKey = "simpledb.document"

// Backend holds one opaque value per key. Get returns nil bytes and a nil
// error when the key has never been written.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// document maps a kind tag to that kind's encoded collection.
type document map[string][]byte

func loadDocument(ctx context.Context, b Backend) (document, error) {
	raw, err := b.Get(ctx, DocumentKey)
	if err != nil {
		return nil, errors.WrapFail(err, "read document")
	}

	doc := document{}
	if len(raw) == 0 {
		return doc, nil
	}

	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, &DecodingError{Err: err}
	}
	return doc, nil
}

func storeDocument(ctx context.Context, b Backend, doc document) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return &EncodingError{Err: err}
	}

	return errors.WrapFail(b.Set(ctx, DocumentKey, raw), "write document")
}
