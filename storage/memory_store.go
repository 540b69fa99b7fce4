package storage

import (
	"context"
	"sync"
	"time"

	"eater-scraper/models"
)

// MemoryStore is an in-process Store used by tests and dry runs.
// Behavior matches PostgresStore: auto-assigned IDs, store-managed
// timestamps, nil for "not found", safe for concurrent workers.
type MemoryStore struct {
	mu          sync.Mutex
	nextID      int64
	restaurants map[int64]*models.Restaurant
	llmInfo     map[int64]*models.RestaurantLLMInfo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:      1,
		restaurants: make(map[int64]*models.Restaurant),
		llmInfo:     make(map[int64]*models.RestaurantLLMInfo),
	}
}

func (s *MemoryStore) Close() {}

func copyRestaurant(r *models.Restaurant) *models.Restaurant {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}

func (s *MemoryStore) FindRestaurantByAddress(_ context.Context, address string) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Exact match, no normalization — same rule as the reconciler.
	for _, r := range s.restaurants {
		if r.Address == address {
			return copyRestaurant(r), nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetRestaurant(_ context.Context, id int64) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRestaurant(s.restaurants[id]), nil
}

func (s *MemoryStore) CreateRestaurant(_ context.Context, rec models.Record) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r := &models.Restaurant{
		ID:          s.nextID,
		Name:        rec.Name,
		Description: rec.Description,
		Address:     rec.Address,
		Source:      rec.Source,
		SourceURL:   rec.SourceURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.restaurants[r.ID] = r
	return copyRestaurant(r), nil
}

func (s *MemoryStore) UpdateRestaurant(_ context.Context, id int64, rec models.Record) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.restaurants[id]
	if !ok {
		return nil, nil
	}
	r.Name = rec.Name
	r.Description = rec.Description
	r.Address = rec.Address
	r.Source = rec.Source
	r.SourceURL = rec.SourceURL
	r.UpdatedAt = time.Now()
	return copyRestaurant(r), nil
}

func (s *MemoryStore) DeleteRestaurant(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.restaurants[id]; !ok {
		return false, nil
	}
	delete(s.restaurants, id)
	delete(s.llmInfo, id)
	return true, nil
}

func (s *MemoryStore) UpsertLLMInfo(_ context.Context, info models.RestaurantLLMInfo) (*models.RestaurantLLMInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := info
	stored.GeneratedAt = time.Now()
	s.llmInfo[info.RestaurantID] = &stored
	out := stored
	return &out, nil
}

func (s *MemoryStore) GetLLMInfo(_ context.Context, restaurantID int64) (*models.RestaurantLLMInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.llmInfo[restaurantID]
	if !ok {
		return nil, nil
	}
	out := *info
	return &out, nil
}

func (s *MemoryStore) DeleteLLMInfo(_ context.Context, restaurantID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.llmInfo[restaurantID]; !ok {
		return false, nil
	}
	delete(s.llmInfo, restaurantID)
	return true, nil
}

// Restaurants returns a snapshot of everything stored, for assertions.
func (s *MemoryStore) Restaurants() []models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, *r)
	}
	return out
}
