package lookup

import (
	"context"
	"felix/internal/adapters/fetch"
	"fmt"
	"regexp"
	"strconv"
)

var (
	catCodePattern = regexp.MustCompile(`<a href="/(\d{3})">`)
	dogCodePattern = regexp.MustCompile(`<a href="(\d{3})-[^"]*"`)
)

// StatusPages scrapes the available status codes from the index pages of the status image sites.
type StatusPages struct {
	catURL string
	dogURL string
}

func NewStatusPages(catURL, dogURL string) *StatusPages {
	return &StatusPages{catURL: catURL, dogURL: dogURL}
}

func (s *StatusPages) CatCodes(ctx context.Context) ([]int, error) {
	return scrapeCodes(ctx, s.catURL, catCodePattern)
}

func (s *StatusPages) DogCodes(ctx context.Context) ([]int, error) {
	return scrapeCodes(ctx, s.dogURL, dogCodePattern)
}

func scrapeCodes(ctx context.Context, url string, pattern *regexp.Regexp) ([]int, error) {
	body, err := fetch.Download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("status page request failed: %w", err)
	}

	matches := pattern.FindAllSubmatch(body, -1)
	codes := make([]int, 0, len(matches))
	for _, match := range matches {
		code, err := strconv.Atoi(string(match[1]))
		if err != nil {
			continue
		}
		codes = append(codes, code)
	}

	return codes, nil
}
