// Package service implements the SmartChef Connect services on top of the
// storage, auth and shopping packages.
package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/smartchef/smartchef/internal/auth"
	"github.com/smartchef/smartchef/internal/importer"
	"github.com/smartchef/smartchef/internal/middleware"
	"github.com/smartchef/smartchef/internal/models"
	"github.com/smartchef/smartchef/internal/storage"
)

var (
	errNotOwner     = errors.New("only the owner can do that")
	errNotAuthor    = errors.New("only the author can change this recipe")
	errOwnRecipe    = errors.New("you cannot rate your own recipe")
	errInvalidScore = errors.New("score must be between 1 and 5")
	errInvalidSort  = errors.New("sort must be newest, rating, title or quickest")
	errMissingID    = errors.New("id is required")
	errMissingInput = errors.New("recipe body is required")
)

// invalidArgument lists the validation errors reported as InvalidArgument.
var invalidArgument = []error{
	models.ErrTitleRequired,
	models.ErrTitleTooLong,
	models.ErrNoIngredients,
	models.ErrNoInstructions,
	models.ErrInvalidServings,
	models.ErrInvalidTime,
	models.ErrInvalidDifficulty,
	models.ErrIngredientNameless,
	models.ErrInvalidDate,
	models.ErrInvalidMealType,
	models.ErrRecipeRequired,
	auth.ErrWeakPassword,
	auth.ErrInvalidEmail,
	auth.ErrDisplayNameMissing,
	importer.ErrInvalidURL,
	importer.ErrNoRecipe,
	errInvalidScore,
	errInvalidSort,
	errMissingID,
	errMissingInput,
}

// toConnectError maps a domain error to a Connect error. Errors that already
// carry a Connect code pass through unchanged.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrDuplicate), errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, errNotOwner), errors.Is(err, errNotAuthor), errors.Is(err, errOwnRecipe):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, importer.ErrFetch):
		return connect.NewError(connect.CodeUnavailable, err)
	}

	for _, target := range invalidArgument {
		if errors.Is(err, target) {
			return connect.NewError(connect.CodeInvalidArgument, err)
		}
	}
	return connect.NewError(connect.CodeInternal, err)
}

// requireUser returns the authenticated caller or an Unauthenticated error.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}
