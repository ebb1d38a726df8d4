package api

type GetProfileRequest struct {
	// UserId defaults to the caller when empty.
	UserId string `json:"userId,omitempty"`
}

type GetProfileResponse struct {
	User *User `json:"user"`
}

type UpdateProfileRequest struct {
	DisplayName        string   `json:"displayName"`
	Bio                string   `json:"bio"`
	AvatarUrl          string   `json:"avatarUrl"`
	DietaryPreferences []string `json:"dietaryPreferences"`
}

type UpdateProfileResponse struct {
	User *User `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ChangePasswordResponse struct{}

type ListUserRecipesRequest struct {
	UserId   string `json:"userId,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

type ListUserRecipesResponse struct {
	Recipes    []*Recipe `json:"recipes"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}
