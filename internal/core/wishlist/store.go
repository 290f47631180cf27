package wishlist

import (
	"context"
	"fmt"
	"sync"

	"github.com/SujithaKC/AI-Recipes-maker/internal/infrastructure/storage"
	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// indexKey holds the ordered list of favorited recipe ids.
	indexKey = "wishlist"
	// recordKeyPrefix prefixes the per-recipe record keys.
	recordKeyPrefix = "recipe_"
)

// Store keeps user-favorited recipes in a durable key-value collaborator:
// an ordered id index under "wishlist" and one JSON record per recipe under
// "recipe_<id>". Membership checks go through an in-memory set so rendering
// cost scales with visible items, not wishlist size.
type Store struct {
	kv storage.KeyValue

	mu      sync.Mutex
	ids     []string
	members map[string]struct{}
}

// NewStore opens the wishlist over kv, loading the id index.
func NewStore(ctx context.Context, kv storage.KeyValue) (*Store, error) {
	ids, err := kv.GetList(ctx, indexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist index: %w", err)
	}

	members := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}

	common.LogInfo("wishlist store opened",
		zap.Int("entries", len(ids)),
	)

	return &Store{
		kv:      kv,
		ids:     ids,
		members: members,
	}, nil
}

// ListIDs returns the favorited ids in insertion order.
func (s *Store) ListIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Contains reports whether id is favorited.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.members[id]
	return ok
}

// Add favorites a recipe. Adding an id that is already present is a no-op.
// The record is written before the index is republished, so a reader that
// sees the id listed can always resolve its record.
func (s *Store) Add(ctx context.Context, recipe common.Recipe) error {
	if recipe.ID == "" {
		return common.NewValidationError("recipe id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(ctx, recipe)
}

func (s *Store) addLocked(ctx context.Context, recipe common.Recipe) error {
	if _, ok := s.members[recipe.ID]; ok {
		return nil
	}

	data, err := common.ToJSON(recipe)
	if err != nil {
		return fmt.Errorf("failed to serialize recipe %s: %w", recipe.ID, err)
	}
	if err := s.kv.Set(ctx, recordKeyPrefix+recipe.ID, data); err != nil {
		return err
	}

	updated := append(append([]string{}, s.ids...), recipe.ID)
	if err := s.kv.SetList(ctx, indexKey, updated); err != nil {
		// Roll back the orphan record so both stores stay in step.
		if derr := s.kv.Delete(ctx, recordKeyPrefix+recipe.ID); derr != nil {
			common.LogError("failed to roll back wishlist record",
				zap.String("id", recipe.ID),
				zap.Error(derr),
			)
		}
		return err
	}

	s.ids = updated
	s.members[recipe.ID] = struct{}{}

	common.LogInfo("recipe added to wishlist",
		zap.String("id", recipe.ID),
		zap.Int("size", len(s.ids)),
	)
	return nil
}

// Remove unfavorites an id. Removing an absent id is a no-op. The index is
// republished before the record is deleted.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, id)
}

func (s *Store) removeLocked(ctx context.Context, id string) error {
	if _, ok := s.members[id]; !ok {
		return nil
	}

	updated := make([]string, 0, len(s.ids)-1)
	for _, existing := range s.ids {
		if existing != id {
			updated = append(updated, existing)
		}
	}
	if err := s.kv.SetList(ctx, indexKey, updated); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, recordKeyPrefix+id); err != nil {
		return err
	}

	s.ids = updated
	delete(s.members, id)

	common.LogInfo("recipe removed from wishlist",
		zap.String("id", id),
		zap.Int("size", len(s.ids)),
	)
	return nil
}

// Toggle adds the recipe when absent and removes it when present, as a
// single serialized operation. Returns whether the recipe is favorited
// afterwards.
func (s *Store) Toggle(ctx context.Context, recipe common.Recipe) (bool, error) {
	if recipe.ID == "" {
		return false, common.NewValidationError("recipe id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[recipe.ID]; ok {
		if err := s.removeLocked(ctx, recipe.ID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.addLocked(ctx, recipe); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the stored recipe for id, if present.
func (s *Store) Get(ctx context.Context, id string) (common.Recipe, bool, error) {
	data, ok, err := s.kv.Get(ctx, recordKeyPrefix+id)
	if err != nil || !ok {
		return common.Recipe{}, false, err
	}

	var recipe common.Recipe
	if err := common.ParseJSON(data, &recipe); err != nil {
		return common.Recipe{}, false, fmt.Errorf("failed to decode recipe %s: %w", id, err)
	}
	return recipe, true, nil
}

// ListAll resolves every favorited id to its record, in insertion order.
// Ids whose record is missing or unreadable are skipped, keeping the read
// available on a degraded store.
func (s *Store) ListAll(ctx context.Context) ([]common.Recipe, error) {
	ids := s.ListIDs()

	recipes := make([]common.Recipe, 0, len(ids))
	for _, id := range ids {
		recipe, ok, err := s.Get(ctx, id)
		if err != nil || !ok {
			common.LogWarn("skipping unreadable wishlist entry",
				zap.String("id", id),
				zap.Error(err),
			)
			continue
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}
