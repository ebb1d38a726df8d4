package models

import "strings"

// Collection is a user-owned, named set of recipes.
type Collection struct {
	// ID is the unique identifier for the collection (UUID format).
	ID string

	OwnerID     string
	Name        string
	Description string

	// IsPublic collections can be read by any authenticated user.
	IsPublic bool

	// RecipeIDs are ordered by the time they were added.
	RecipeIDs []string

	CreatedAt int64
	UpdatedAt int64
}

// Validate trims and checks the collection name.
func (c *Collection) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	if c.Name == "" {
		return ErrTitleRequired
	}
	if len(c.Name) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// VisibleTo reports whether the given user may read the collection.
func (c *Collection) VisibleTo(userID string) bool {
	return c.IsPublic || c.OwnerID == userID
}
