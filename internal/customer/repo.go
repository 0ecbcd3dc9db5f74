package customer

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a customer or check does not exist.
var ErrNotFound = errors.New("customer: not found")

// Store persists customers and their skill-check history.
type Store interface {
	// UpsertCustomer inserts the customer or, when a row with the same
	// customer number exists, updates its profile fields. The stored row
	// is returned either way.
	UpsertCustomer(ctx context.Context, c Customer) (Customer, error)
	GetCustomer(ctx context.Context, id int64) (Customer, error)
	GetCustomerByNumber(ctx context.Context, number string) (Customer, error)
	// ListCustomers returns all customers ordered by customer number.
	ListCustomers(ctx context.Context) ([]Customer, error)

	// AddSkillCheck appends one evaluation to the customer's history.
	AddSkillCheck(ctx context.Context, chk SkillCheck) (SkillCheck, error)
	// ChecksForCustomer returns the customer's evaluations newest first.
	ChecksForCustomer(ctx context.Context, customerID int64) ([]SkillCheck, error)
	// LatestCheck returns the most recent evaluation, or ErrNotFound.
	LatestCheck(ctx context.Context, customerID int64) (SkillCheck, error)

	AddNote(ctx context.Context, n Note) (Note, error)
	NotesForCustomer(ctx context.Context, customerID int64) ([]Note, error)
}
