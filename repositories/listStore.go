package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"IrisCare/models"
	"IrisCare/storage"
	"IrisCare/utils"
)

// recordPtr constrains PT to a pointer to T that satisfies models.Record.
type recordPtr[T any] interface {
	*T
	models.Record
}

// ListStore persists a flat list of records under one key-value entry. Every
// mutation loads and rewrites the full list; there is no locking, matching the
// single-writer storage model the service assumes.
type ListStore[T any, PT recordPtr[T]] struct {
	kv  storage.KV
	key string
}

func NewListStore[T any, PT recordPtr[T]](kv storage.KV, key string) *ListStore[T, PT] {
	return &ListStore[T, PT]{kv: kv, key: key}
}

// List returns every record in insertion order. An unreadable or corrupt
// collection yields an empty list rather than an error.
func (s *ListStore[T, PT]) List(ctx context.Context) []T {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		log.Printf("Failed to read %s: %v", s.key, err)
		return []T{}
	}
	if raw == "" {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("Failed to parse %s: %v", s.key, err)
		return []T{}
	}
	return records
}

// Create stamps the record with a fresh id and matching creation timestamps,
// appends it and rewrites the collection.
func (s *ListStore[T, PT]) Create(ctx context.Context, record PT) (PT, error) {
	records := s.List(ctx)
	record.Stamp(utils.NewID(), utils.NowISO())
	records = append(records, *record)
	if err := s.persist(ctx, records); err != nil {
		return nil, err
	}
	return record, nil
}

// Update merges patch over the record with the given id and forces a fresh
// updatedAt. An unknown id returns (nil, nil) and leaves the collection untouched.
func (s *ListStore[T, PT]) Update(ctx context.Context, id string, patch map[string]interface{}) (PT, error) {
	records := s.List(ctx)
	for i := range records {
		if PT(&records[i]).RecordID() != id {
			continue
		}
		merged, err := mergeRecord(&records[i], patch)
		if err != nil {
			return nil, err
		}
		records[i] = *merged
		if err := s.persist(ctx, records); err != nil {
			return nil, err
		}
		return PT(&records[i]), nil
	}
	return nil, nil
}

// Remove filters the record out of the list. A false return means the id was not
// present; the collection is rewritten only when something was removed.
func (s *ListStore[T, PT]) Remove(ctx context.Context, id string) (bool, error) {
	records := s.List(ctx)
	remaining := make([]T, 0, len(records))
	for i := range records {
		if PT(&records[i]).RecordID() == id {
			continue
		}
		remaining = append(remaining, records[i])
	}
	if len(remaining) == len(records) {
		return false, nil
	}
	if err := s.persist(ctx, remaining); err != nil {
		return false, err
	}
	return true, nil
}

// FindByID scans the list for the record with the given id, nil when absent.
func (s *ListStore[T, PT]) FindByID(ctx context.Context, id string) PT {
	records := s.List(ctx)
	for i := range records {
		if PT(&records[i]).RecordID() == id {
			record := records[i]
			return PT(&record)
		}
	}
	return nil
}

// Replace swaps the whole collection, used by the import paths.
func (s *ListStore[T, PT]) Replace(ctx context.Context, records []T) error {
	return s.persist(ctx, records)
}

func (s *ListStore[T, PT]) persist(ctx context.Context, records []T) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.key, err)
	}
	if err := s.kv.Set(ctx, s.key, string(blob)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", s.key, err)
	}
	return nil
}

// mergeRecord overlays patch onto the JSON form of record and decodes the result
// back. The updatedAt field is forced last so a patch cannot pin it.
func mergeRecord[T any](record *T, patch map[string]interface{}) (*T, error) {
	blob, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	data := map[string]interface{}{}
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	for key, value := range patch {
		data[key] = value
	}
	data["updatedAt"] = utils.NowISO()

	blob, err = json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged record: %w", err)
	}
	merged := new(T)
	if err := json.Unmarshal(blob, merged); err != nil {
		return nil, fmt.Errorf("failed to decode merged record: %w", err)
	}
	return merged, nil
}
