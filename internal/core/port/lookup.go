package port

import (
	"context"
	"felix/internal/core/domain"
)

type GifSearcher interface {
	// SearchGifs returns up to limit image URLs matching the terms.
	SearchGifs(ctx context.Context, terms string, limit int) ([]string, error)
}

type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

type Dictionary interface {
	Define(ctx context.Context, term string) ([]domain.Definition, error)
}

type VideoSearcher interface {
	// SearchPage fetches one page of channel videos, an empty token requests the first page.
	SearchPage(ctx context.Context, pageToken string) (domain.VideoPage, error)
}

type WeatherReporter interface {
	// Report fetches the plain text report for location, options is the raw query string.
	Report(ctx context.Context, location, options string) (string, error)
}

type MessageStats interface {
	MessageCount(ctx context.Context, userID string) (int, error)
}

type JokeTeller interface {
	Categories(ctx context.Context) ([]string, error)
	RandomJoke(ctx context.Context, category string) (string, error)
}

type PictureOfTheDay interface {
	// Picture fetches the entry for date (YYYY-MM-DD), an empty date means today.
	Picture(ctx context.Context, date string) (domain.Picture, error)
}

type CheatSheet interface {
	// URL builds the public page address for a topic and optional search terms.
	URL(topic string, terms []string) string
	// Lookup fetches the plain text page at url.
	Lookup(ctx context.Context, url string) (string, error)
}

type StatusCodeSource interface {
	CatCodes(ctx context.Context) ([]int, error)
	DogCodes(ctx context.Context) ([]int, error)
}

// StatusCodes is the read side of the status code cache. Every accessor fails until its field has
// been populated.
type StatusCodes interface {
	CatCodes() ([]int, error)
	DogCodes() ([]int, error)
	ChuckCategories() ([]string, error)
}
