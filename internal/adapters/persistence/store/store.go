// Package store defines the key-value document tree the repositories
// persist into, plus its concrete backends. A collection is a namespace
// whose children are individual records keyed by id; records are flat
// string-keyed maps with lists and maps nested as-is.
package store

import "context"

// Document is one stored record.
type Document = map[string]interface{}

// Store is the storage boundary. Implementations report transport and
// encoding problems as errors; absence of a record is Get returning
// (nil, nil) and List returning an empty children map. Patch performs a
// shallow merge at the record. It does not check existence, callers
// layer that on (the read-then-write in the repository layer is a
// documented check-then-act race, not something a backend must fix).
type Store interface {
	Put(ctx context.Context, collection, id string, doc Document) error
	Get(ctx context.Context, collection, id string) (Document, error)
	Patch(ctx context.Context, collection, id string, partial Document) error
	Remove(ctx context.Context, collection, id string) error
	List(ctx context.Context, collection string) (map[string]Document, error)
	Ping(ctx context.Context) error
}
