package storage

import (
	"context"

	"eater-scraper/models"
)

// Store is the persistence surface the pipeline reconciles against.
// Lookups return (nil, nil) for "not found"; only real failures error.
// Implementations must be safe for concurrent use — every worker in a
// batch calls into the same Store.
type Store interface {
	FindRestaurantByAddress(ctx context.Context, address string) (*models.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error)
	CreateRestaurant(ctx context.Context, rec models.Record) (*models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int64, rec models.Record) (*models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) (bool, error)

	UpsertLLMInfo(ctx context.Context, info models.RestaurantLLMInfo) (*models.RestaurantLLMInfo, error)
	GetLLMInfo(ctx context.Context, restaurantID int64) (*models.RestaurantLLMInfo, error)
	DeleteLLMInfo(ctx context.Context, restaurantID int64) (bool, error)

	Close()
}
