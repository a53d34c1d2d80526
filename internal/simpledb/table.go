package simpledb

import (
	"context"

	"github.com/nikmy/palettes/pkg/errors"
)

// Table is the typed view of one kind's partition.
type Table[T any, K comparable] struct {
	db   *Database
	kind Kind[T, K]
}

func (t *Table[T, K]) Tag() string {
	return t.kind.Tag
}

func (t *Table[T, K]) FetchAll(ctx context.Context) ([]T, error) {
	doc, err := loadDocument(ctx, t.db.backend)
	if err != nil {
		return nil, err
	}
	return t.decode(doc)
}

// FetchByKey reports false, not an error, when no record has key.
func (t *Table[T, K]) FetchByKey(ctx context.Context, key K) (T, bool, error) {
	var zero T

	records, err := t.FetchAll(ctx)
	if err != nil {
		return zero, false, err
	}

	for _, r := range records {
		if t.kind.Key(r) == key {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// UpsertOne replaces the record sharing r's key, or appends r.
func (t *Table[T, K]) UpsertOne(ctx context.Context, r T) error {
	return t.UpsertMany(ctx, []T{r})
}

// UpsertMany evicts every stored record whose key appears in records, then
// appends records. Within the batch the last record for a key wins.
func (t *Table[T, K]) UpsertMany(ctx context.Context, records []T) error {
	return t.mutate(ctx, "upsert", func(current []T) ([]T, error) {
		return t.upsert(current, records), nil
	})
}

// InsertOne is the strict variant of UpsertOne: it fails with
// *DuplicateKeyError if the key is already stored.
func (t *Table[T, K]) InsertOne(ctx context.Context, r T) error {
	key := t.kind.Key(r)
	return t.mutate(ctx, "insert", func(current []T) ([]T, error) {
		if t.index(current, key) >= 0 {
			return nil, &DuplicateKeyError{Tag: t.kind.Tag, Key: key}
		}
		return append(current, r), nil
	})
}

// UpdateOne is the strict variant of UpsertOne: it fails with
// *NotFoundError if the key is not stored. The updated record moves to the
// end of the collection, as with an upsert.
func (t *Table[T, K]) UpdateOne(ctx context.Context, r T) error {
	key := t.kind.Key(r)
	return t.mutate(ctx, "update", func(current []T) ([]T, error) {
		if t.index(current, key) < 0 {
			return nil, &NotFoundError{Tag: t.kind.Tag, Key: key}
		}
		return t.upsert(current, []T{r}), nil
	})
}

func (t *Table[T, K]) DeleteOne(ctx context.Context, r T) error {
	return t.DeleteMany(ctx, []T{r})
}

// DeleteMany removes every record sharing a key with records. Keys that
// are not stored are ignored; the document is still rewritten and
// observers are still notified.
func (t *Table[T, K]) DeleteMany(ctx context.Context, records []T) error {
	return t.mutate(ctx, "delete", func(current []T) ([]T, error) {
		return t.without(current, t.keys(records)), nil
	})
}

// mutate runs one read-modify-write cycle over the partition. Nothing is
// written and nobody is notified unless every step before the write works.
func (t *Table[T, K]) mutate(ctx context.Context, op string, apply func([]T) ([]T, error)) error {
	err := t.doMutate(ctx, op, apply)
	if err != nil {
		t.db.log.Warn(errors.WrapFailf(err, "%s %q", op, t.kind.Tag))
	}
	return err
}

func (t *Table[T, K]) doMutate(ctx context.Context, op string, apply func([]T) ([]T, error)) error {
	doc, err := loadDocument(ctx, t.db.backend)
	if err != nil {
		return err
	}

	current, err := t.decode(doc)
	if err != nil {
		return err
	}

	next, err := apply(current)
	if err != nil {
		return err
	}

	encoded, err := t.kind.Codec.Encode(next)
	if err != nil {
		return &EncodingError{Tag: t.kind.Tag, Err: err}
	}

	doc[t.kind.Tag] = encoded
	if err := storeDocument(ctx, t.db.backend, doc); err != nil {
		return err
	}

	t.db.log.Debugf("%s %q: %d -> %d records", op, t.kind.Tag, len(current), len(next))
	t.db.observers.Notify(t.kind.Tag, next)
	return nil
}

func (t *Table[T, K]) decode(doc document) ([]T, error) {
	records, err := t.kind.Codec.Decode(doc[t.kind.Tag])
	if err != nil {
		return nil, &DecodingError{Tag: t.kind.Tag, Err: err}
	}
	return records, nil
}

func (t *Table[T, K]) upsert(current, records []T) []T {
	return append(t.without(current, t.keys(records)), t.dedupe(records)...)
}

// dedupe keeps the last record for every key, in input order.
func (t *Table[T, K]) dedupe(records []T) []T {
	last := make(map[K]int, len(records))
	for i, r := range records {
		last[t.kind.Key(r)] = i
	}

	out := make([]T, 0, len(last))
	for i, r := range records {
		if last[t.kind.Key(r)] == i {
			out = append(out, r)
		}
	}
	return out
}

func (t *Table[T, K]) without(current []T, keys map[K]struct{}) []T {
	out := make([]T, 0, len(current))
	for _, r := range current {
		if _, drop := keys[t.kind.Key(r)]; !drop {
			out = append(out, r)
		}
	}
	return out
}

func (t *Table[T, K]) keys(records []T) map[K]struct{} {
	keys := make(map[K]struct{}, len(records))
	for _, r := range records {
		keys[t.kind.Key(r)] = struct{}{}
	}
	return keys
}

func (t *Table[T, K]) index(records []T, key K) int {
	for i, r := range records {
		if t.kind.Key(r) == key {
			return i
		}
	}
	return -1
}
