// Package storage provides key-value backends for simpledb: an in-memory
// map, a directory of files, an embedded leveldb and a MongoDB collection,
// plus a read cache that wraps any of them. Each stores opaque values and
// returns nil bytes for keys that were never written.
package storage
