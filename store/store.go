// Package store is the durable record store: a mapping from collection
// name to the full set of records in that collection. Save always
// overwrites the whole collection; Load of an unknown collection leaves
// dest empty rather than failing.
package store

import "context"

// Collection names used by the repositories.
const (
	Books        = "books"
	Users        = "users"
	Memberships  = "memberships"
	Transactions = "transactions"
)

type Store interface {
	// Load decodes the named collection into dest (a pointer to a slice).
	Load(ctx context.Context, collection string, dest any) error
	// Save overwrites the named collection with records.
	Save(ctx context.Context, collection string, records any) error
}
