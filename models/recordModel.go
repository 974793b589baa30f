package models

// Record is implemented by every entity persisted through the record store.
type Record interface {
	// RecordID returns the immutable identifier assigned at creation.
	RecordID() string
	// Stamp assigns the identifier and the creation timestamps in one step.
	Stamp(id, now string)
}
