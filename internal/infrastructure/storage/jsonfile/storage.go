// Package jsonfile persists the whole catalog as a single JSON document.
// Every mutation rewrites the file synchronously before the call returns;
// a failed write rolls the in-memory state back, so callers never observe
// a half-applied operation.
package jsonfile

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"librarydesk/internal/domain/favorite"
	"librarydesk/internal/domain/media"

	json "github.com/goccy/go-json"
	"golang.org/x/exp/slog"
)

// document is the on-disk shape: record objects keyed by their
// string-encoded id, plus the array of favorite ids.
type document struct {
	Media     map[string]media.Media `json:"media"`
	Favorites []int                  `json:"favorites"`
}

// Storage keeps the catalog in memory behind a single-writer lock and
// mirrors it to one JSON file. It implements media.Repository and
// favorite.Repository.
type Storage struct {
	mu        sync.RWMutex
	path      string
	media     map[int]media.Media
	favorites []int
	nextID    int
	log       *slog.Logger
}

// New loads the catalog from path. A missing or unreadable file falls
// back to the seed dataset, which is immediately written out.
func New(path string, log *slog.Logger) (*Storage, error) {
	s := &Storage{
		path: path,
		log:  log.With("component", "jsonfile_storage"),
	}

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return s, nil
}

func (s *Storage) load() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.log.Info("catalog file missing, initializing from seed data", "path", s.path)
		return s.reset()
	}
	if err != nil {
		s.log.Warn("catalog file unreadable, reinitializing from seed data", "path", s.path, "error", err)
		return s.reset()
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("catalog file corrupt, reinitializing from seed data", "path", s.path, "error", err)
		return s.reset()
	}

	records := make(map[int]media.Media, len(doc.Media))
	for key, item := range doc.Media {
		id, err := strconv.Atoi(key)
		if err != nil {
			s.log.Warn("catalog file has a non-numeric id, reinitializing from seed data", "path", s.path, "key", key)
			return s.reset()
		}
		item.ID = id
		records[id] = item
	}

	favorites := make([]int, 0, len(doc.Favorites))
	for _, id := range doc.Favorites {
		if _, ok := records[id]; ok {
			favorites = append(favorites, id)
		}
	}

	s.media = records
	s.favorites = favorites
	s.nextID = nextID(records)
	return nil
}

// reset installs the seed dataset and writes it out.
func (s *Storage) reset() error {
	s.media = seedCatalog()
	s.favorites = []int{}
	s.nextID = nextID(s.media)
	return s.save()
}

func nextID(records map[int]media.Media) int {
	next := 1
	for id := range records {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// save serializes the full catalog and overwrites the file. Callers must
// hold the write lock.
func (s *Storage) save() error {
	doc := document{
		Media:     make(map[string]media.Media, len(s.media)),
		Favorites: s.favorites,
	}
	for id, item := range s.media {
		doc.Media[strconv.Itoa(id)] = item
	}

	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	return nil
}

// Path returns the backing file location.
func (s *Storage) Path() string {
	return s.path
}

// --- media.Repository ---

func (s *Storage) List(_ context.Context) ([]media.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(media.Media) bool { return true }), nil
}

func (s *Storage) Get(_ context.Context, id int) (*media.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.media[id]
	if !ok {
		return nil, media.ErrNotFound
	}
	return &item, nil
}

func (s *Storage) ListByCategory(_ context.Context, category string) ([]media.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(m media.Media) bool {
		return strings.EqualFold(m.Category, category)
	}), nil
}

func (s *Storage) SearchByName(_ context.Context, name string) ([]media.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(m media.Media) bool {
		return strings.EqualFold(m.Name, name)
	}), nil
}

func (s *Storage) Create(_ context.Context, draft media.Draft) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.media[id] = media.Media{
		ID:              id,
		Name:            draft.Name,
		Author:          draft.Author,
		PublicationDate: draft.PublicationDate,
		Category:        draft.Category,
	}

	if err := s.save(); err != nil {
		delete(s.media, id)
		return 0, err
	}

	// Ids are never reused, even after deletes.
	s.nextID++
	return id, nil
}

func (s *Storage) Update(_ context.Context, id int, changes media.Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.media[id]
	if !ok {
		return media.ErrNotFound
	}

	updated := current
	if changes.Name != nil {
		updated.Name = *changes.Name
	}
	if changes.Author != nil {
		updated.Author = *changes.Author
	}
	if changes.PublicationDate != nil {
		updated.PublicationDate = *changes.PublicationDate
	}
	if changes.Category != nil {
		updated.Category = *changes.Category
	}

	s.media[id] = updated
	if err := s.save(); err != nil {
		s.media[id] = current
		return err
	}

	return nil
}

func (s *Storage) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.media[id]
	if !ok {
		return media.ErrNotFound
	}

	prevFavorites := s.favorites
	delete(s.media, id)
	s.favorites = withoutID(s.favorites, id)

	if err := s.save(); err != nil {
		s.media[id] = current
		s.favorites = prevFavorites
		return err
	}

	return nil
}

func (s *Storage) SetScreenshot(_ context.Context, id int, path string) error {
	return s.setScreenshot(id, &path)
}

func (s *Storage) ClearScreenshot(_ context.Context, id int) error {
	return s.setScreenshot(id, nil)
}

func (s *Storage) setScreenshot(id int, path *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.media[id]
	if !ok {
		return media.ErrNotFound
	}

	updated := current
	updated.Screenshot = path
	s.media[id] = updated

	if err := s.save(); err != nil {
		s.media[id] = current
		return err
	}

	return nil
}

func (s *Storage) Screenshot(_ context.Context, id int) (*string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.media[id]
	if !ok {
		return nil, media.ErrNotFound
	}
	return item.Screenshot, nil
}

func (s *Storage) Stats(_ context.Context) (media.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := media.Stats{
		TotalItems:     len(s.media),
		TotalFavorites: len(s.favorites),
		Categories:     make(map[string]int),
	}
	for _, item := range s.media {
		category := item.Category
		if category == "" {
			category = "Unknown"
		}
		stats.Categories[category]++
	}

	return stats, nil
}

// --- favorite.Repository ---

func (s *Storage) IDs(_ context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, len(s.favorites))
	copy(ids, s.favorites)
	return ids, nil
}

func (s *Storage) Records(_ context.Context) ([]media.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]media.Media, 0, len(s.favorites))
	for _, id := range s.favorites {
		if item, ok := s.media[id]; ok {
			records = append(records, item)
		}
	}
	return records, nil
}

func (s *Storage) Add(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.media[id]; !ok {
		return favorite.ErrUnknownMedia
	}
	for _, fav := range s.favorites {
		if fav == id {
			return favorite.ErrAlreadyFavorite
		}
	}

	s.favorites = append(s.favorites, id)
	if err := s.save(); err != nil {
		s.favorites = s.favorites[:len(s.favorites)-1]
		return err
	}

	return nil
}

func (s *Storage) Remove(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := withoutID(s.favorites, id)
	if len(next) == len(s.favorites) {
		return favorite.ErrNotFavorite
	}

	prev := s.favorites
	s.favorites = next
	if err := s.save(); err != nil {
		s.favorites = prev
		return err
	}

	return nil
}

// snapshot copies matching records out of the map, ordered by id. Callers
// must hold at least the read lock.
func (s *Storage) snapshot(match func(media.Media) bool) []media.Media {
	items := make([]media.Media, 0, len(s.media))
	for _, item := range s.media {
		if match(item) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func withoutID(ids []int, id int) []int {
	next := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			next = append(next, v)
		}
	}
	return next
}
