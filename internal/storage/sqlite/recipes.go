package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartchef/smartchef/internal/calculator"
	"github.com/smartchef/smartchef/internal/models"
	"github.com/smartchef/smartchef/internal/storage"
)

// recipeDocument is the JSON body stored in recipes.document.
// Columns hold only what listings filter and sort on.
type recipeDocument struct {
	Description     string           `json:"description,omitempty"`
	Ingredients     []ingredientDoc  `json:"ingredients"`
	Instructions    []string         `json:"instructions"`
	Nutrition       models.Nutrition `json:"nutrition"`
	PrepTimeMinutes int              `json:"prep_time_minutes"`
	CookTimeMinutes int              `json:"cook_time_minutes"`
	Servings        int              `json:"servings"`
	Tags            []string         `json:"tags"`
	ImageURL        string           `json:"image_url,omitempty"`
	SourceURL       string           `json:"source_url,omitempty"`
}

type ingredientDoc struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit,omitempty"`
}

func encodeRecipe(r *models.Recipe) (string, error) {
	doc := recipeDocument{
		Description:     r.Description,
		Ingredients:     make([]ingredientDoc, len(r.Ingredients)),
		Instructions:    r.Instructions,
		Nutrition:       r.Nutrition,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		Tags:            r.Tags,
		ImageURL:        r.ImageURL,
		SourceURL:       r.SourceURL,
	}
	for i, ing := range r.Ingredients {
		doc.Ingredients[i] = ingredientDoc{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit}
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal recipe document: %w", err)
	}
	return string(data), nil
}

func decodeRecipe(r *models.Recipe, raw string) error {
	var doc recipeDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return fmt.Errorf("failed to unmarshal recipe document %s: %w", r.ID, err)
	}

	r.Description = doc.Description
	r.Ingredients = make([]models.Ingredient, len(doc.Ingredients))
	for i, ing := range doc.Ingredients {
		r.Ingredients[i] = models.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit}
	}
	r.Instructions = doc.Instructions
	r.Nutrition = doc.Nutrition
	r.PrepTimeMinutes = doc.PrepTimeMinutes
	r.CookTimeMinutes = doc.CookTimeMinutes
	r.Servings = doc.Servings
	r.Tags = doc.Tags
	r.ImageURL = doc.ImageURL
	r.SourceURL = doc.SourceURL
	return nil
}

const recipeColumns = `id, author_id, title, cuisine, difficulty, is_public, average_rating, rating_count, document, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*models.Recipe, error) {
	r := &models.Recipe{}
	var isPublic int
	var document string
	if err := row.Scan(
		&r.ID, &r.AuthorID, &r.Title, &r.Cuisine, &r.Difficulty, &isPublic,
		&r.AverageRating, &r.RatingCount, &document, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	r.IsPublic = isPublic == 1
	if err := decodeRecipe(r, document); err != nil {
		return nil, err
	}
	return r, nil
}

// CreateRecipe persists a new recipe document.
func (s *SQLiteStore) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	// Generate IDs if not set
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if recipe.CreatedAt == 0 {
		recipe.CreatedAt = now
	}
	recipe.UpdatedAt = now

	document, err := encodeRecipe(recipe)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO recipes (id, author_id, title, cuisine, difficulty, total_minutes, is_public, document, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.ID, recipe.AuthorID, recipe.Title, recipe.Cuisine, string(recipe.Difficulty),
		recipe.TotalTimeMinutes(), boolToInt(recipe.IsPublic), document, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("recipe %s: %w", recipe.ID, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	return nil
}

// GetRecipe retrieves a recipe by ID.
func (s *SQLiteStore) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	recipe, err := scanRecipe(s.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, notFound("recipe", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

// FindRecipe resolves an ID or title reference.
func (s *SQLiteStore) FindRecipe(ctx context.Context, ref, viewerID string) (*models.Recipe, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, notFound("recipe", ref)
	}

	// An ID only resolves when the viewer may read that recipe
	recipe, err := s.GetRecipe(ctx, ref)
	if err == nil && recipe.VisibleTo(viewerID) {
		return recipe, nil
	}

	// Title match: the viewer's own recipe wins over someone else's public one
	recipe, err = scanRecipe(s.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes
		 WHERE `+foldFunc+`(title) = ? AND (is_public = 1 OR author_id = ?)
		 ORDER BY (author_id = ?) DESC, created_at ASC
		 LIMIT 1`,
		calculator.NormalizeName(ref), viewerID, viewerID))
	if err == sql.ErrNoRows {
		return nil, notFound("recipe", ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe by title: %w", err)
	}
	return recipe, nil
}

// UpdateRecipe replaces a recipe document. Ratings are left untouched.
func (s *SQLiteStore) UpdateRecipe(ctx context.Context, recipe *models.Recipe) error {
	recipe.UpdatedAt = time.Now().Unix()

	document, err := encodeRecipe(recipe)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE recipes
		 SET title = ?, cuisine = ?, difficulty = ?, total_minutes = ?, is_public = ?, document = ?, updated_at = ?
		 WHERE id = ?`,
		recipe.Title, recipe.Cuisine, string(recipe.Difficulty), recipe.TotalTimeMinutes(),
		boolToInt(recipe.IsPublic), document, recipe.UpdatedAt, recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return checkAffected(res, "recipe", recipe.ID)
}

// DeleteRecipe removes a recipe, its ratings and its collection memberships.
// Planned meals keep their (now dangling) reference.
func (s *SQLiteStore) DeleteRecipe(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return checkAffected(res, "recipe", id)
}

// ListRecipes returns one page of recipes matching filter and the total count.
func (s *SQLiteStore) ListRecipes(ctx context.Context, filter storage.RecipeFilter) ([]*models.Recipe, int, error) {
	where := []string{"(is_public = 1 OR author_id = ?)"}
	args := []any{filter.ViewerID}

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		pattern := "%" + q + "%"
		where = append(where, `(`+foldFunc+`(title) LIKE ? OR EXISTS (
			SELECT 1 FROM json_each(recipes.document, '$.ingredients') AS ing
			WHERE `+foldFunc+`(json_extract(ing.value, '$.name')) LIKE ?))`)
		args = append(args, pattern, pattern)
	}
	if filter.Cuisine != "" {
		where = append(where, "cuisine = ?")
		args = append(args, strings.ToLower(filter.Cuisine))
	}
	if filter.Tag != "" {
		where = append(where, `EXISTS (SELECT 1 FROM json_each(recipes.document, '$.tags') AS t WHERE t.value = ?)`)
		args = append(args, strings.ToLower(filter.Tag))
	}
	if filter.Difficulty != "" {
		where = append(where, "difficulty = ?")
		args = append(args, string(filter.Difficulty))
	}
	if filter.MaxTotalMinutes > 0 {
		where = append(where, "total_minutes <= ?")
		args = append(args, filter.MaxTotalMinutes)
	}
	if filter.AuthorID != "" {
		where = append(where, "author_id = ?")
		args = append(args, filter.AuthorID)
	}
	clause := strings.Join(where, " AND ")

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes WHERE `+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = calculator.DefaultPageSize
	}
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE ` + clause +
		` ORDER BY ` + recipeOrder(filter.Sort) + ` LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, query, append(args, limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*models.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	return recipes, total, nil
}

func recipeOrder(sort storage.RecipeSort) string {
	switch sort {
	case storage.SortRating:
		return "average_rating DESC, rating_count DESC, created_at DESC, id"
	case storage.SortTitle:
		return "lower(title) ASC, id"
	case storage.SortQuickest:
		return "total_minutes ASC, created_at DESC, id"
	default:
		return "created_at DESC, id"
	}
}

// UpsertRating stores a rating and refreshes the recipe's aggregate counters
// in the same transaction.
func (s *SQLiteStore) UpsertRating(ctx context.Context, rating *models.Rating) (float64, int, error) {
	now := time.Now().Unix()
	rating.UpdatedAt = now
	if rating.CreatedAt == 0 {
		rating.CreatedAt = now
	}

	var average float64
	var count int
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_ratings (recipe_id, user_id, score, comment, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT (recipe_id, user_id) DO UPDATE
			 SET score = excluded.score, comment = excluded.comment, updated_at = excluded.updated_at`,
			rating.RecipeID, rating.UserID, rating.Score, rating.Comment, rating.CreatedAt, rating.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert rating: %w", err)
		}

		rows, err := tx.QueryContext(ctx, `SELECT score FROM recipe_ratings WHERE recipe_id = ?`, rating.RecipeID)
		if err != nil {
			return fmt.Errorf("failed to load scores: %w", err)
		}
		var scores []int
		for rows.Next() {
			var score int
			if err := rows.Scan(&score); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan score: %w", err)
			}
			scores = append(scores, score)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate scores: %w", err)
		}

		average = calculator.AverageRating(scores)
		count = len(scores)
		_, err = tx.ExecContext(ctx,
			`UPDATE recipes SET average_rating = ?, rating_count = ? WHERE id = ?`,
			average, count, rating.RecipeID,
		)
		if err != nil {
			return fmt.Errorf("failed to update rating counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return average, count, nil
}

// ListRatings returns all ratings of a recipe, newest first.
func (s *SQLiteStore) ListRatings(ctx context.Context, recipeID string) ([]*models.Rating, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT recipe_id, user_id, score, comment, created_at, updated_at
		 FROM recipe_ratings WHERE recipe_id = ? ORDER BY updated_at DESC, user_id`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*models.Rating
	for rows.Next() {
		r := &models.Rating{}
		if err := rows.Scan(&r.RecipeID, &r.UserID, &r.Score, &r.Comment, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ratings: %w", err)
	}
	return ratings, nil
}
