package store

import "context"

// Offline is the Gateway used when no database could be set up. Every
// operation fails with a *Error wrapping the reason, which lets the
// services serve their degraded responses.
type Offline struct {
	reason error
}

func NewOffline(reason error) *Offline {
	if reason == nil {
		reason = ErrNotConfigured
	}
	return &Offline{reason: reason}
}

func (o *Offline) Insert(_ context.Context, collection string, _ any) (string, error) {
	return "", wrap("insert", collection, o.reason)
}

func (o *Offline) Find(_ context.Context, collection string, _ Filter, _ int64) ([]Document, error) {
	return nil, wrap("find", collection, o.reason)
}

func (o *Offline) ListCollections(_ context.Context) ([]string, error) {
	return nil, wrap("list collections", "", o.reason)
}

func (o *Offline) Name() string {
	return ""
}

func (o *Offline) Initialized() bool {
	return false
}

func (o *Offline) Close(_ context.Context) error {
	return nil
}
