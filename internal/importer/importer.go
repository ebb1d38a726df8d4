// Package importer fetches recipe web pages and extracts their schema.org
// Recipe markup.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/smartchef/smartchef/internal/models"
)

var (
	// ErrNoRecipe is returned when a page carries no recognisable recipe markup.
	ErrNoRecipe = errors.New("no recipe found on page")
	// ErrInvalidURL is returned for anything but absolute http(s) URLs.
	ErrInvalidURL = errors.New("url must be an absolute http or https URL")
	// ErrFetch wraps transport failures and non-200 responses.
	ErrFetch = errors.New("failed to fetch page")
)

// Options configures an Importer.
type Options struct {
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
}

// Importer downloads pages and turns them into recipe drafts.
type Importer struct {
	client *http.Client
	opts   Options
	logger *slog.Logger
}

// New creates an Importer. A nil client uses a dedicated http.Client with opts.Timeout.
func New(client *http.Client, opts Options, logger *slog.Logger) *Importer {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 5 << 20
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "SmartChefImporter/1.0"
	}
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{client: client, opts: opts, logger: logger}
}

// Import fetches rawURL and extracts a recipe draft. The draft carries the
// source URL but no author, ID or visibility; callers fill those in.
func (im *Importer) Import(ctx context.Context, rawURL string) (*models.Recipe, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}

	ctx, cancel := context.WithTimeout(ctx, im.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", im.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := im.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, im.opts.MaxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	recipe, err := Extract(doc)
	if err != nil {
		return nil, err
	}
	recipe.SourceURL = u.String()

	im.logger.Info("Recipe extracted",
		"url", u.String(),
		"title", recipe.Title,
		"ingredients", len(recipe.Ingredients),
		"instructions", len(recipe.Instructions),
	)
	return recipe, nil
}
