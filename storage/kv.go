package storage

import "context"

// Storage keys. Values are raw strings; record collections and the session
// snapshot are JSON-encoded, the session timestamp is epoch milliseconds and the
// admin marker is the literal "true".
const (
	KeyPatients         = "patients"
	KeyProfessionals    = "professionals"
	KeyMessages         = "messages"
	KeyCurrentUser      = "currentUser"
	KeySessionTimestamp = "sessionTimestamp"
	KeyAdminSession     = "adminSession"
)

// KV is a flat string key-value store. Get returns ("", nil) for a missing key;
// an error means the store itself is unreadable.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
