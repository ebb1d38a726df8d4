package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartchef/smartchef/internal/models"
)

// CreateMealPlan inserts a plan together with any meals it already carries.
func (s *SQLiteStore) CreateMealPlan(ctx context.Context, plan *models.MealPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO meal_plans (id, owner_id, name, week_start, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			plan.ID, plan.OwnerID, plan.Name, plan.WeekStart, plan.CreatedAt, plan.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert meal plan: %w", err)
		}

		for i := range plan.Meals {
			if err := insertPlannedMeal(ctx, tx, plan.ID, &plan.Meals[i], now); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertPlannedMeal(ctx context.Context, tx *sql.Tx, planID string, meal *models.PlannedMeal, now int64) error {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO planned_meals (id, plan_id, date, meal_type, recipe_ref, servings, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meal.ID, planID, meal.Date, string(meal.MealType), meal.RecipeRef, meal.Servings, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert planned meal: %w", err)
	}
	return nil
}

// GetMealPlan retrieves a plan with its meals and stored shopping list.
func (s *SQLiteStore) GetMealPlan(ctx context.Context, id string) (*models.MealPlan, error) {
	plan := &models.MealPlan{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, week_start, created_at, updated_at FROM meal_plans WHERE id = ?`, id,
	).Scan(&plan.ID, &plan.OwnerID, &plan.Name, &plan.WeekStart, &plan.CreatedAt, &plan.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, notFound("meal plan", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}

	if plan.Meals, err = s.listPlannedMeals(ctx, id); err != nil {
		return nil, err
	}
	if plan.ShoppingList, err = s.listShoppingItems(ctx, id); err != nil {
		return nil, err
	}
	return plan, nil
}

// mealOrder sorts slots by date, then breakfast through snack, then insertion.
const mealOrder = `date ASC,
	CASE meal_type WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1 WHEN 'dinner' THEN 2 ELSE 3 END ASC,
	created_at ASC, rowid ASC`

func (s *SQLiteStore) listPlannedMeals(ctx context.Context, planID string) ([]models.PlannedMeal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, meal_type, recipe_ref, servings FROM planned_meals
		 WHERE plan_id = ? ORDER BY `+mealOrder,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned meals: %w", err)
	}
	defer rows.Close()

	meals := []models.PlannedMeal{}
	for rows.Next() {
		var m models.PlannedMeal
		if err := rows.Scan(&m.ID, &m.Date, &m.MealType, &m.RecipeRef, &m.Servings); err != nil {
			return nil, fmt.Errorf("failed to scan planned meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate planned meals: %w", err)
	}
	return meals, nil
}

func (s *SQLiteStore) listShoppingItems(ctx context.Context, planID string) ([]models.ShoppingListItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, amount, unit, category, source_recipes, purchased
		 FROM shopping_list_items WHERE plan_id = ? ORDER BY position ASC`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	defer rows.Close()

	items := []models.ShoppingListItem{}
	for rows.Next() {
		var item models.ShoppingListItem
		var sources string
		var purchased int
		if err := rows.Scan(&item.ID, &item.Name, &item.Amount, &item.Unit, &item.Category, &sources, &purchased); err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		if item.SourceRecipes, err = decodeStrings(sources); err != nil {
			return nil, err
		}
		item.Purchased = purchased == 1
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopping items: %w", err)
	}
	return items, nil
}

// ListMealPlans returns the owner's plans, most recent week first.
func (s *SQLiteStore) ListMealPlans(ctx context.Context, ownerID string) ([]*models.MealPlan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, name, week_start, created_at, updated_at FROM meal_plans
		 WHERE owner_id = ? ORDER BY week_start DESC, created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.MealPlan
	for rows.Next() {
		p := &models.MealPlan{}
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.WeekStart, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal plans: %w", err)
	}
	return plans, nil
}

// UpdateMealPlan updates the plan's name and week start.
func (s *SQLiteStore) UpdateMealPlan(ctx context.Context, plan *models.MealPlan) error {
	plan.UpdatedAt = time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`UPDATE meal_plans SET name = ?, week_start = ?, updated_at = ? WHERE id = ?`,
		plan.Name, plan.WeekStart, plan.UpdatedAt, plan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update meal plan: %w", err)
	}
	return checkAffected(res, "meal plan", plan.ID)
}

// DeleteMealPlan removes a plan; meals and shopping items cascade.
func (s *SQLiteStore) DeleteMealPlan(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM meal_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}
	return checkAffected(res, "meal plan", id)
}

// AddPlannedMeal attaches a meal slot to an existing plan.
func (s *SQLiteStore) AddPlannedMeal(ctx context.Context, planID string, meal *models.PlannedMeal) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		now := time.Now().Unix()
		res, err := tx.ExecContext(ctx, `UPDATE meal_plans SET updated_at = ? WHERE id = ?`, now, planID)
		if err != nil {
			return fmt.Errorf("failed to touch meal plan: %w", err)
		}
		if err := checkAffected(res, "meal plan", planID); err != nil {
			return err
		}
		return insertPlannedMeal(ctx, tx, planID, meal, now)
	})
}

// RemovePlannedMeal deletes one meal slot of a plan.
func (s *SQLiteStore) RemovePlannedMeal(ctx context.Context, planID, mealID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM planned_meals WHERE id = ? AND plan_id = ?`, mealID, planID)
		if err != nil {
			return fmt.Errorf("failed to delete planned meal: %w", err)
		}
		if err := checkAffected(res, "planned meal", mealID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE meal_plans SET updated_at = ? WHERE id = ?`, time.Now().Unix(), planID)
		if err != nil {
			return fmt.Errorf("failed to touch meal plan: %w", err)
		}
		return nil
	})
}

// ReplaceShoppingList overwrites the plan's stored list in a single transaction.
func (s *SQLiteStore) ReplaceShoppingList(ctx context.Context, planID string, items []models.ShoppingListItem) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		now := time.Now().Unix()
		res, err := tx.ExecContext(ctx, `UPDATE meal_plans SET updated_at = ? WHERE id = ?`, now, planID)
		if err != nil {
			return fmt.Errorf("failed to touch meal plan: %w", err)
		}
		if err := checkAffected(res, "meal plan", planID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM shopping_list_items WHERE plan_id = ?`, planID); err != nil {
			return fmt.Errorf("failed to clear shopping list: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO shopping_list_items (id, plan_id, position, name, amount, unit, category, source_recipes, purchased)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare shopping item insert: %w", err)
		}
		defer stmt.Close()

		for i, item := range items {
			_, err := stmt.ExecContext(ctx,
				item.ID, planID, i, item.Name, item.Amount, item.Unit, string(item.Category),
				encodeStrings(item.SourceRecipes), boolToInt(item.Purchased),
			)
			if err != nil {
				return fmt.Errorf("failed to insert shopping item %s: %w", item.Name, err)
			}
		}
		return nil
	})
}

// SetShoppingItemPurchased toggles the purchased flag of one stored item.
func (s *SQLiteStore) SetShoppingItemPurchased(ctx context.Context, planID, itemID string, purchased bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE shopping_list_items SET purchased = ? WHERE plan_id = ? AND id = ?`,
		boolToInt(purchased), planID, itemID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}
	return checkAffected(res, "shopping item", itemID)
}
