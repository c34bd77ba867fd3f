package domain

import "context"

// OrderRepository is the persistence port for order documents.
type OrderRepository interface {
	Upsert(ctx context.Context, id string, raw []byte) error
	LoadAll(ctx context.Context, fn func(id string, raw []byte) error) error
}

// OrderCache is the fast-read port for orders.
type OrderCache interface {
	Get(id string) (Order, bool)
	Set(id string, o Order)
}

// AdminDirectory resolves the well-known administrator identifier to an
// internal user id. Returns ErrNotFound when no such account exists.
type AdminDirectory interface {
	ResolveEmail(ctx context.Context, email string) (userID string, err error)
}

// ProfileRepository is the persistence port for notification profiles.
type ProfileRepository interface {
	// Find returns the profile for the given user id, or ErrNotFound.
	Find(ctx context.Context, userID string) (NotificationProfile, error)
	// AddToken registers a device token and sets the enabled flag. Adding a
	// token that is already present is a no-op.
	AddToken(ctx context.Context, userID, token string) error
	// RemoveTokens removes exactly the given tokens from the stored set as a
	// single write. The removal is a set difference against the current
	// server-side set, so concurrent prunes are commutative.
	RemoveTokens(ctx context.Context, userID string, tokens []string) error
}

// PushSender delivers one notification to many device tokens in a single
// multicast call, returning one result per token in input order.
type PushSender interface {
	SendMulticast(ctx context.Context, tokens []string, n Notification) ([]SendResult, error)
}

// MessageSubscriber is the port for the order-created event source.
type MessageSubscriber interface {
	// Subscribe registers the handler; ack/redelivery is the adapter's job.
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}

// Shared domain errors
var (
	ErrNotFound   = notFoundError("not found")
	ErrValidation = validationError("invalid data")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }
