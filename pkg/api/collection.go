package api

type CreateCollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}

type CreateCollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type GetCollectionRequest struct {
	CollectionId string `json:"collectionId"`
}

type GetCollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type ListCollectionsRequest struct {
	// OwnerId defaults to the caller when empty.
	OwnerId string `json:"ownerId,omitempty"`
}

type ListCollectionsResponse struct {
	Collections []*Collection `json:"collections"`
}

type UpdateCollectionRequest struct {
	CollectionId string `json:"collectionId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsPublic     bool   `json:"isPublic"`
}

type UpdateCollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type DeleteCollectionRequest struct {
	CollectionId string `json:"collectionId"`
}

type DeleteCollectionResponse struct{}

type AddRecipeRequest struct {
	CollectionId string `json:"collectionId"`
	RecipeId     string `json:"recipeId"`
}

type AddRecipeResponse struct {
	Collection *Collection `json:"collection"`
}

type RemoveRecipeRequest struct {
	CollectionId string `json:"collectionId"`
	RecipeId     string `json:"recipeId"`
}

type RemoveRecipeResponse struct {
	Collection *Collection `json:"collection"`
}
