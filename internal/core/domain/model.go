package domain

import "time"

type User struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
	Bot         bool
}

// Message is a single inbound chat message, stripped of the command prefix when it reached a
// command handler.
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	Author    User
	Text      string
}

// IsDirect reports whether the message was sent outside of a guild.
func (m *Message) IsDirect() bool {
	return m.GuildID == ""
}

type Role struct {
	ID       string
	Name     string
	Position int
}

// Mention renders the role the way the chat client expects, @everyone is never pinged.
func (r Role) Mention() string {
	if r.ID == "" || r.Name == "@everyone" {
		return "@everyone"
	}

	return "<@&" + r.ID + ">"
}

type Member struct {
	User
	// Tag is the unique account name, e.g. "name" or "name#1234" for legacy accounts.
	Tag        string
	Color      int
	TopRole    Role
	RoleIDs    []string
	Status     string
	Activities []string
	JoinedAt   time.Time
	CreatedAt  time.Time
}

func (m Member) HasRole(roleID string) bool {
	for _, id := range m.RoleIDs {
		if id == roleID {
			return true
		}
	}

	return false
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

type EmbedAuthor struct {
	Name    string
	IconURL string
}

type EmbedFooter struct {
	Text    string
	IconURL string
}

// Embed is a rich reply block. Zero-valued parts are left out when rendered.
type Embed struct {
	Title        string
	URL          string
	Description  string
	Color        int
	ImageURL     string
	ThumbnailURL string
	Author       *EmbedAuthor
	Footer       *EmbedFooter
	Fields       []EmbedField
}

type Action string

const (
	Typing Action = "typing"
)

type Definition struct {
	Definition string
	Example    string
}

type Video struct {
	ID    string
	Title string
}

type VideoPage struct {
	Videos        []Video
	NextPageToken string
}

// Picture is an astronomy picture of the day entry.
type Picture struct {
	Title       string
	Explanation string
	Date        string
	MediaType   string
	URL         string
	HDURL       string
	Copyright   string
}
