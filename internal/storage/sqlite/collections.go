package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartchef/smartchef/internal/models"
	"github.com/smartchef/smartchef/internal/storage"
)

// CreateCollection inserts an empty collection.
func (s *SQLiteStore) CreateCollection(ctx context.Context, c *models.Collection) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.RecipeIDs == nil {
		c.RecipeIDs = []string{}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (id, owner_id, name, description, is_public, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Name, c.Description, boolToInt(c.IsPublic), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}
	return nil
}

// GetCollection retrieves a collection with its recipe IDs in insertion order.
func (s *SQLiteStore) GetCollection(ctx context.Context, id string) (*models.Collection, error) {
	c := &models.Collection{}
	var isPublic int
	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, description, is_public, created_at, updated_at FROM collections WHERE id = ?`, id,
	).Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description, &isPublic, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, notFound("collection", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	c.IsPublic = isPublic == 1

	if c.RecipeIDs, err = s.collectionRecipeIDs(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLiteStore) collectionRecipeIDs(ctx context.Context, collectionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT recipe_id FROM collection_recipes WHERE collection_id = ? ORDER BY added_at ASC, rowid ASC`,
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection recipes: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan collection recipe: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collection recipes: %w", err)
	}
	return ids, nil
}

// ListCollections returns the owner's collections, newest first.
func (s *SQLiteStore) ListCollections(ctx context.Context, ownerID string, includePrivate bool) ([]*models.Collection, error) {
	query := `SELECT id, owner_id, name, description, is_public, created_at, updated_at
		FROM collections WHERE owner_id = ?`
	if !includePrivate {
		query += ` AND is_public = 1`
	}
	query += ` ORDER BY created_at DESC, name ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	var collections []*models.Collection
	for rows.Next() {
		c := &models.Collection{}
		var isPublic int
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description, &isPublic, &c.CreatedAt, &c.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		c.IsPublic = isPublic == 1
		collections = append(collections, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collections: %w", err)
	}

	// Second pass once the cursor is released
	for _, c := range collections {
		if c.RecipeIDs, err = s.collectionRecipeIDs(ctx, c.ID); err != nil {
			return nil, err
		}
	}
	return collections, nil
}

// UpdateCollection saves name, description and visibility.
func (s *SQLiteStore) UpdateCollection(ctx context.Context, c *models.Collection) error {
	c.UpdatedAt = time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`UPDATE collections SET name = ?, description = ?, is_public = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.Description, boolToInt(c.IsPublic), c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update collection: %w", err)
	}
	return checkAffected(res, "collection", c.ID)
}

// DeleteCollection removes a collection. The recipes themselves are untouched.
func (s *SQLiteStore) DeleteCollection(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return checkAffected(res, "collection", id)
}

// AddRecipeToCollection appends a recipe. Adding a recipe twice returns storage.ErrDuplicate.
func (s *SQLiteStore) AddRecipeToCollection(ctx context.Context, collectionID, recipeID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		now := time.Now().Unix()
		res, err := tx.ExecContext(ctx, `UPDATE collections SET updated_at = ? WHERE id = ?`, now, collectionID)
		if err != nil {
			return fmt.Errorf("failed to touch collection: %w", err)
		}
		if err := checkAffected(res, "collection", collectionID); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO collection_recipes (collection_id, recipe_id, added_at) VALUES (?, ?, ?)`,
			collectionID, recipeID, now,
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("recipe %s in collection %s: %w", recipeID, collectionID, storage.ErrDuplicate)
		}
		if err != nil {
			return fmt.Errorf("failed to add recipe to collection: %w", err)
		}
		return nil
	})
}

// RemoveRecipeFromCollection detaches a recipe from a collection.
func (s *SQLiteStore) RemoveRecipeFromCollection(ctx context.Context, collectionID, recipeID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM collection_recipes WHERE collection_id = ? AND recipe_id = ?`,
		collectionID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove recipe from collection: %w", err)
	}
	return checkAffected(res, "collection recipe", recipeID)
}
