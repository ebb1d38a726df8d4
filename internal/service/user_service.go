package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/smartchef/smartchef/internal/auth"
	"github.com/smartchef/smartchef/internal/calculator"
	"github.com/smartchef/smartchef/internal/storage"
	"github.com/smartchef/smartchef/pkg/api"
	"github.com/smartchef/smartchef/pkg/api/apiconnect"
)

var _ apiconnect.UserServiceHandler = (*UserService)(nil)

// UserService manages profiles. Every method requires authentication.
type UserService struct {
	users         storage.UserStore
	recipes       storage.RecipeStore
	authenticator auth.Authenticator
	logger        *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(users storage.UserStore, recipes storage.RecipeStore, authenticator auth.Authenticator, logger *slog.Logger) *UserService {
	return &UserService{users: users, recipes: recipes, authenticator: authenticator, logger: logger}
}

// GetProfile returns a user's public profile, or the caller's own profile.
func (s *UserService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	callerID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	userID := req.Msg.UserId
	if userID == "" {
		userID = callerID
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("GetProfile failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetProfileResponse{User: toAPIUser(user, userID == callerID)}), nil
}

// UpdateProfile replaces the caller's display name, bio, avatar and diets.
func (s *UserService) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("UpdateProfile request", "user_id", userID)

	displayName := strings.TrimSpace(req.Msg.DisplayName)
	if displayName == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrDisplayNameMissing)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	user.DisplayName = displayName
	user.Bio = strings.TrimSpace(req.Msg.Bio)
	user.AvatarURL = strings.TrimSpace(req.Msg.AvatarUrl)
	user.DietaryPreferences = cleanList(req.Msg.DietaryPreferences)

	if err := s.users.UpdateUser(ctx, user); err != nil {
		s.logger.Error("UpdateProfile failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Profile updated", "user_id", userID)
	return connect.NewResponse(&api.UpdateProfileResponse{User: toAPIUser(user, true)}), nil
}

// ChangePassword verifies the current password and stores the new one.
func (s *UserService) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.authenticator.ChangeCredential(ctx, userID, req.Msg.CurrentPassword, req.Msg.NewPassword); err != nil {
		s.logger.Warn("ChangePassword failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Password changed", "user_id", userID)
	return connect.NewResponse(&api.ChangePasswordResponse{}), nil
}

// ListUserRecipes pages through a user's recipes. Other users only see the
// public ones.
func (s *UserService) ListUserRecipes(ctx context.Context, req *connect.Request[api.ListUserRecipesRequest]) (*connect.Response[api.ListUserRecipesResponse], error) {
	callerID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	authorID := req.Msg.UserId
	if authorID == "" {
		authorID = callerID
	}

	page := calculator.NewPage(req.Msg.Page, req.Msg.PageSize)
	recipes, total, err := s.recipes.ListRecipes(ctx, storage.RecipeFilter{
		AuthorID: authorID,
		ViewerID: callerID,
		Sort:     storage.SortNewest,
		Limit:    page.Size,
		Offset:   page.Offset(),
	})
	if err != nil {
		s.logger.Error("ListUserRecipes failed", "author_id", authorID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListUserRecipesResponse{
		Recipes:    toAPIRecipes(recipes),
		Page:       page.Number,
		PageSize:   page.Size,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}), nil
}

// cleanList trims entries and drops blanks and case-insensitive duplicates.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
