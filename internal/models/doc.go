// Package models defines the core domain models for SmartChef.
//
// # Models
//
//   - User: a registered account that owns recipes, meal plans and collections
//   - Recipe: a recipe document with its ingredients, instructions and nutrition
//   - Rating: one user's score for a recipe
//   - MealPlan: a weekly plan of PlannedMeal slots plus its shopping list
//   - ShoppingListItem: one aggregated, categorized purchase line
//   - Collection: a named set of recipe references
//
// # Design Principles
//
// 1. **Plain structs**: models carry no storage or transport concerns
// 2. **String IDs**: relationships use ID strings (UUID format), never pointers
// 3. **Weak recipe references**: planned meals and collections reference recipes
//    by ID or title; a missing recipe is tolerated by readers
// 4. **Unix timestamps**: CreatedAt/UpdatedAt are Unix seconds
package models
