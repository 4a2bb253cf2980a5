package service

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// UnknownCatCode is always offered by the cat service, it is not listed on its index page.
const UnknownCatCode = 0

const explicitCategory = "explicit"

// StatusCodeCache holds the valid status codes and joke categories of the image and joke
// services. Every field is filled at most once per process and stays unready if its fetch failed.
type StatusCodeCache struct {
	source port.StatusCodeSource
	jokes  port.JokeTeller

	once  sync.Once
	cats  atomic.Pointer[[]int]
	dogs  atomic.Pointer[[]int]
	chuck atomic.Pointer[[]string]
}

func NewStatusCodeCache(source port.StatusCodeSource, jokes port.JokeTeller) *StatusCodeCache {
	return &StatusCodeCache{source: source, jokes: jokes}
}

// Start populates the cache in the background and returns immediately.
func (c *StatusCodeCache) Start(ctx context.Context) {
	go func() {
		if err := c.Populate(ctx); err != nil {
			log.Warn().Err(err).Msg("status code cache partially loaded")
		}
	}()
}

// Populate fetches all three sources concurrently. A failing source does not stop the others.
// Calls after the first one are no-ops.
func (c *StatusCodeCache) Populate(ctx context.Context) error {
	var err error

	c.once.Do(func() {
		var g errgroup.Group

		g.Go(func() error { return c.loadCats(ctx) })
		g.Go(func() error { return c.loadDogs(ctx) })
		g.Go(func() error { return c.loadChuck(ctx) })

		err = g.Wait()
	})

	return err
}

func (c *StatusCodeCache) loadCats(ctx context.Context) error {
	codes, err := c.source.CatCodes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cat codes: %w", err)
	}

	codes = append(codes, UnknownCatCode)
	c.cats.Store(&codes)
	log.Debug().Int("count", len(codes)).Msg("loaded cat status codes")

	return nil
}

func (c *StatusCodeCache) loadDogs(ctx context.Context) error {
	codes, err := c.source.DogCodes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dog codes: %w", err)
	}

	c.dogs.Store(&codes)
	log.Debug().Int("count", len(codes)).Msg("loaded dog status codes")

	return nil
}

func (c *StatusCodeCache) loadChuck(ctx context.Context) error {
	categories, err := c.jokes.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load joke categories: %w", err)
	}

	filtered := make([]string, 0, len(categories))
	for _, category := range categories {
		if category != explicitCategory {
			filtered = append(filtered, category)
		}
	}

	c.chuck.Store(&filtered)
	log.Debug().Int("count", len(filtered)).Msg("loaded joke categories")

	return nil
}

func (c *StatusCodeCache) CatCodes() ([]int, error) {
	codes := c.cats.Load()
	if codes == nil {
		return nil, domain.ErrCatCodesNotLoaded
	}

	return *codes, nil
}

func (c *StatusCodeCache) DogCodes() ([]int, error) {
	codes := c.dogs.Load()
	if codes == nil {
		return nil, domain.ErrDogCodesNotLoaded
	}

	return *codes, nil
}

func (c *StatusCodeCache) ChuckCategories() ([]string, error) {
	categories := c.chuck.Load()
	if categories == nil {
		return nil, domain.ErrChuckNotLoaded
	}

	return *categories, nil
}
