// Package store is the gateway to the document database. Records are
// grouped into named collections and every record handed back to callers
// exposes its store-assigned identifier as the text field "id".
package store

import "context"

// Collection names used by the application
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// IDField is the field under which a record's identifier is exposed
const IDField = "id"

// nativeIDField is the identifier field used by the database itself
const nativeIDField = "_id"

// Document is a raw record read from the store
type Document map[string]any

// Filter selects documents whose fields equal every key/value pair.
// An empty filter matches all documents.
type Filter map[string]any

// Gateway is the contract every document store implementation satisfies.
// Implementations are safe for concurrent use and report every failure as
// a *Error.
type Gateway interface {
	// Insert persists one record and returns its new identifier as text
	Insert(ctx context.Context, collection string, record any) (string, error)

	// Find returns up to limit records matching filter. A limit of zero
	// means no limit.
	Find(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)

	// ListCollections returns the collection names of the database
	ListCollections(ctx context.Context) ([]string, error)

	// Name returns the database name, empty when not initialized
	Name() string

	// Initialized reports whether a database client backs the gateway
	Initialized() bool

	// Close releases the underlying connection
	Close(ctx context.Context) error
}
