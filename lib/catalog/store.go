// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/shopfront-foundation/shopfront/lib/ref"
)

// ErrNotFound means no item with the requested ID exists.
var ErrNotFound = errors.New("item not found")

// ErrValidation means a draft or update carried invalid values.
var ErrValidation = errors.New("invalid item")

// Update is a partial update for an item. Nil fields are left
// untouched — omitted is "keep", never "reset".
type Update struct {
	Price *float64
	Stock *int64
}

// Store owns the durable catalog and its in-memory view.
//
// Safe for concurrent use. One mutex serializes every
// read-modify-write cycle, which covers the two hazards the design
// cares about: interleaved cycles on the same item (an update
// silently resurrecting a concurrent delete) and duplicate IDs from
// concurrent creates. The lock is never held across anything slower
// than the file write — rendering happens strictly after a mutation
// returns.
type Store struct {
	path   string
	logger *slog.Logger

	mu    sync.Mutex
	items []Item

	// highWater is the largest ID ever observed, whether or not the
	// item still exists. Creates assign highWater+1 so a freed ID is
	// never handed out again within the store's lifetime.
	highWater int64
}

// Open loads the catalog at path, creating an empty store if the file
// does not exist yet. If logger is nil, slog.Default() is used.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	store := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &store.items); err != nil {
		return nil, fmt.Errorf("catalog: parsing %s: %w", path, err)
	}

	seen := make(map[int64]struct{}, len(store.items))
	for i := range store.items {
		item := &store.items[i]
		if item.ID <= 0 {
			return nil, fmt.Errorf("catalog: %s: item %q has non-positive id %d", path, item.Name, item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("catalog: %s: duplicate item id %d", path, item.ID)
		}
		seen[item.ID] = struct{}{}
		if item.ID > store.highWater {
			store.highWater = item.ID
		}
	}
	return store, nil
}

// Create validates draft, assigns the next ID, persists, and returns
// the stored item.
func (s *Store) Create(draft Draft) (Item, error) {
	if err := validateDraft(draft); err != nil {
		return Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:              s.highWater + 1,
		Name:            draft.Name,
		Price:           RoundPrice(draft.Price),
		Stock:           cloneInt(draft.Stock),
		ImageRef:        draft.ImageRef,
		PaymentMethods:  append([]string(nil), draft.PaymentMethods...),
		DiscountPercent: draft.DiscountPercent,
	}
	if item.PaymentMethods == nil {
		item.PaymentMethods = []string{}
	}

	next := append(append([]Item(nil), s.items...), item)
	if err := s.persist(next); err != nil {
		return Item{}, err
	}
	s.items = next
	s.highWater = item.ID
	return cloneItem(item), nil
}

// Get returns the item with the given ID, or ErrNotFound.
func (s *Store) Get(id int64) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return Item{}, fmt.Errorf("catalog: id %d: %w", id, ErrNotFound)
	}
	return cloneItem(s.items[index]), nil
}

// Update applies the non-nil fields of update to the item with the
// given ID and persists the result.
func (s *Store) Update(id int64, update Update) (Item, error) {
	if update.Price != nil && *update.Price < 0 {
		return Item{}, fmt.Errorf("catalog: price must not be negative: %w", ErrValidation)
	}
	if update.Stock != nil && *update.Stock < 0 {
		return Item{}, fmt.Errorf("catalog: stock must not be negative: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return Item{}, fmt.Errorf("catalog: id %d: %w", id, ErrNotFound)
	}

	next := append([]Item(nil), s.items...)
	if update.Price != nil {
		next[index].Price = RoundPrice(*update.Price)
	}
	if update.Stock != nil {
		next[index].Stock = cloneInt(update.Stock)
	}

	if err := s.persist(next); err != nil {
		return Item{}, err
	}
	s.items = next
	return cloneItem(next[index]), nil
}

// SetRenderLink records where the item's card is rendered and
// persists the association.
func (s *Store) SetRenderLink(id int64, link RenderLink) (Item, error) {
	return s.mutateRenderLink(id, &link)
}

// ClearRenderLink removes the item's render association, for when the
// rendered card is known to be gone.
func (s *Store) ClearRenderLink(id int64) (Item, error) {
	return s.mutateRenderLink(id, nil)
}

func (s *Store) mutateRenderLink(id int64, link *RenderLink) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return Item{}, fmt.Errorf("catalog: id %d: %w", id, ErrNotFound)
	}

	next := append([]Item(nil), s.items...)
	if link != nil {
		copied := *link
		next[index].RenderLink = &copied
	} else {
		next[index].RenderLink = nil
	}

	if err := s.persist(next); err != nil {
		return Item{}, err
	}
	s.items = next
	return cloneItem(next[index]), nil
}

// Delete removes the item with the given ID. Removal is immediate and
// irreversible; the ID is never reassigned.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return fmt.Errorf("catalog: id %d: %w", id, ErrNotFound)
	}

	next := append([]Item(nil), s.items[:index]...)
	next = append(next, s.items[index+1:]...)

	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// List returns all items in insertion order.
func (s *Store) List() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	for i, item := range s.items {
		items[i] = cloneItem(item)
	}
	return items
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// FindByRenderAnchor returns the item whose card is anchored at the
// given message, if any. Used when a platform event references a
// rendered card.
func (s *Store) FindByRenderAnchor(channel ref.ChannelID, message ref.MessageID) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.RenderLink != nil &&
			item.RenderLink.SurfaceID == channel &&
			item.RenderLink.AnchorID == message {
			return cloneItem(item), true
		}
	}
	return Item{}, false
}

// persist writes items to disk atomically: temp file in the same
// directory, then rename. The previous catalog bytes are kept as a
// zstd-compressed backup next to the file before being replaced.
// Caller must hold s.mu.
func (s *Store) persist(items []Item) error {
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("catalog: encoding: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(s.path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("catalog: creating %s: %w", directory, err)
	}

	s.backupPrevious()

	tmpFile, err := os.CreateTemp(directory, "catalog-*.tmp")
	if err != nil {
		return fmt.Errorf("catalog: creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("catalog: writing temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("catalog: syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("catalog: closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("catalog: replacing %s: %w", s.path, err)
	}

	success = true
	return nil
}

// backupPrevious snapshots the current catalog file to <path>.bak.zst.
// Best-effort: a failed backup is logged and never blocks the write —
// the catalog mutation matters more than the safety copy.
func (s *Store) backupPrevious() {
	previous, err := os.ReadFile(s.path)
	if err != nil {
		return // Nothing to back up.
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		s.logger.Warn("catalog backup skipped", "error", err)
		return
	}
	compressed := encoder.EncodeAll(previous, nil)
	encoder.Close()

	backupPath := s.path + ".bak.zst"
	if err := os.WriteFile(backupPath, compressed, 0o644); err != nil {
		s.logger.Warn("catalog backup failed", "path", backupPath, "error", err)
	}
}

// indexOf returns the position of id in s.items, or -1. Caller must
// hold s.mu.
func (s *Store) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func validateDraft(draft Draft) error {
	if draft.Name == "" {
		return fmt.Errorf("catalog: name must not be empty: %w", ErrValidation)
	}
	if draft.Price < 0 {
		return fmt.Errorf("catalog: price must not be negative: %w", ErrValidation)
	}
	if draft.Stock != nil && *draft.Stock < 0 {
		return fmt.Errorf("catalog: stock must not be negative: %w", ErrValidation)
	}
	if draft.DiscountPercent < 0 || draft.DiscountPercent > 100 {
		return fmt.Errorf("catalog: discount must be within [0, 100]: %w", ErrValidation)
	}
	return nil
}

func cloneInt(value *int64) *int64 {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func cloneItem(item Item) Item {
	item.Stock = cloneInt(item.Stock)
	if item.RenderLink != nil {
		link := *item.RenderLink
		item.RenderLink = &link
	}
	if item.PaymentMethods != nil {
		item.PaymentMethods = append([]string{}, item.PaymentMethods...)
	}
	return item
}
