// Package simpledb is a typed, observable object store kept in a single
// persisted document.
//
// Every kind of record registered with a Database owns one partition of the
// document, keyed by the kind's tag. Each mutation reads the whole document,
// rewrites one partition and writes the whole document back, then hands the
// complete resulting collection to the kind's observers before returning.
//
// A Database takes no locks. Two goroutines mutating the same kind without
// external synchronization can lose one of the updates.
package simpledb

import (
	"context"

	"github.com/nikmy/palettes/internal/observe"
	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
)

// Observer is notified with full snapshots of a kind's collection. It is
// held weakly: keep a reference to it for as long as it should receive
// updates.
type Observer[T any] = observe.Observer[T]

type Database struct {
	backend   Backend
	log       logger.Logger
	observers *observe.Manager
	tags      map[string]struct{}
}

func New(backend Backend, log logger.Logger) *Database {
	return &Database{
		backend:   backend,
		log:       log.With("simpledb"),
		observers: observe.New(),
		tags:      make(map[string]struct{}),
	}
}

// Register binds kind to db. Each tag can be registered once per Database.
func Register[T any, K comparable](db *Database, kind Kind[T, K]) (*Table[T, K], error) {
	if err := kind.validate(); err != nil {
		return nil, errors.WrapFail(err, "register kind")
	}

	if _, taken := db.tags[kind.Tag]; taken {
		return nil, errors.Wrapf(ErrKindRegistered, "tag %q", kind.Tag)
	}
	db.tags[kind.Tag] = struct{}{}

	return &Table[T, K]{db: db, kind: kind}, nil
}

// AddObserver registers obs for t's kind and synchronously delivers the
// current collection to it before returning. Observers of zero-size types
// are rejected with ErrZeroSizeObserver.
func AddObserver[T any, K comparable, O any, P observe.Ptr[O, T]](ctx context.Context, t *Table[T, K], obs P) error {
	values, err := t.FetchAll(ctx)
	if err != nil {
		return errors.WrapFail(err, "fetch initial values")
	}

	return errors.Wrapf(observe.Add(t.db.observers, t.kind.Tag, obs, values), "observe %q", t.kind.Tag)
}

// ResetAll drops every partition in one write, then delivers an empty
// collection to every live observer of every kind.
func (db *Database) ResetAll(ctx context.Context) error {
	if err := storeDocument(ctx, db.backend, document{}); err != nil {
		db.log.Warn(errors.WrapFail(err, "reset document"))
		return err
	}

	db.log.Debugf("document reset")
	db.observers.NotifyReset()
	return nil
}

// LiveObserverCount counts observers that are still alive, across all kinds.
func (db *Database) LiveObserverCount() int {
	return db.observers.LiveObserverCount()
}
