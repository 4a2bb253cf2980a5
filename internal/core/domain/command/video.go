package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"strings"
	"time"
)

const maxVideoResults = 5

type Video struct {
	searcher port.VideoSearcher
	sender   port.Replier
	command  string
}

func NewVideo(searcher port.VideoSearcher, sender port.Replier, command string) *Video {
	return &Video{searcher: searcher, sender: sender, command: command}
}

func (v *Video) GetCommand() string {
	return v.command
}

func (v *Video) GetAliases() []string {
	return nil
}

func (v *Video) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, v.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	term := ParseCommandArgs(message.Text)
	if term == "" {
		return v.sender.NotifyAndReturnError(ctx, missingArgument("term"), message)
	}

	videos, err := v.allVideos(ctx)
	if err != nil {
		return v.sender.NotifyAndReturnError(ctx, fmt.Errorf("failed to list videos: %w", err), message)
	}

	l.Debug().Int("videos", len(videos)).Msg("fetched channel videos")

	matches := FilterVideos(videos, term, maxVideoResults)
	if len(matches) == 0 {
		_, err := v.sender.SendMessageReply(ctx, message, "Sorry, no videos found for: "+term)
		return err
	}

	lines := make([]string, 0, len(matches))
	for _, video := range matches {
		lines = append(lines, fmt.Sprintf("[%s](https://www.youtube.com/watch?v=%s)", video.Title, video.ID))
	}

	return v.sender.SendEmbedReply(ctx, message, &domain.Embed{
		Title:       "Search Results",
		Description: strings.Join(lines, "\n"),
	})
}

// allVideos follows the page tokens until the last page. It stops early when ctx is done.
func (v *Video) allVideos(ctx context.Context) ([]domain.Video, error) {
	var (
		videos []domain.Video
		token  string
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := v.searcher.SearchPage(ctx, token)
		if err != nil {
			return nil, err
		}

		videos = append(videos, page.Videos...)

		if page.NextPageToken == "" {
			return videos, nil
		}
		token = page.NextPageToken
	}
}

// FilterVideos keeps the videos whose title contains every word of term, ignoring case, in their
// original order and at most limit of them.
func FilterVideos(videos []domain.Video, term string, limit int) []domain.Video {
	keywords := strings.Fields(strings.ToLower(term))

	var matches []domain.Video
	for _, video := range videos {
		if len(matches) == limit {
			break
		}

		title := strings.ToLower(video.Title)
		if containsAll(title, keywords) {
			matches = append(matches, video)
		}
	}

	return matches
}

func containsAll(s string, words []string) bool {
	for _, word := range words {
		if !strings.Contains(s, word) {
			return false
		}
	}

	return true
}
