package services

import (
	"context"
	"fmt"

	"eater-scraper/models"
	"eater-scraper/storage"
	"eater-scraper/utils"
)

// Reconciler folds extracted records into the store, keeping at most
// one restaurant per distinct address. The lookup-then-write here is
// the only enforcement of that invariant — the schema carries no
// unique constraint. Concurrent writes to the same address across
// independent runs are last-write-wins.
type Reconciler struct {
	store storage.Store
}

func NewReconciler(store storage.Store) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile upserts a single record by exact address match. Each call
// is an independent unit of work; no transaction spans records.
func (r *Reconciler) Reconcile(ctx context.Context, rec models.Record) (*models.Restaurant, error) {
	existing, err := r.store.FindRestaurantByAddress(ctx, rec.Address)
	if err != nil {
		return nil, fmt.Errorf("lookup by address %q: %w", rec.Address, err)
	}

	if existing != nil {
		utils.Info("Updating existing restaurant at address %s: %s", rec.Address, rec.Name)
		return r.store.UpdateRestaurant(ctx, existing.ID, rec)
	}

	utils.Info("Creating new restaurant: %s at %s", rec.Name, rec.Address)
	return r.store.CreateRestaurant(ctx, rec)
}

// ReconcileAll runs Reconcile over a page's records in order, stopping
// at the first failure so the caller can report the unit as failed.
func (r *Reconciler) ReconcileAll(ctx context.Context, records []models.Record) error {
	for _, rec := range records {
		if _, err := r.Reconcile(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
