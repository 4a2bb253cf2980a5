package guild

import (
	"context"
	"felix/internal/core/domain"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// membersPageSize is the largest page the member list endpoint hands out.
const membersPageSize = 1000

type GuildSession interface {
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMembers(guildID string, after string, limit int,
		options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
}

// PresenceCache is satisfied by *discordgo.State, which tracks presences from the gateway.
type PresenceCache interface {
	Presence(guildID, userID string) (*discordgo.Presence, error)
}

type Discord struct {
	session   GuildSession
	presences PresenceCache
}

func NewDiscord(session GuildSession, presences PresenceCache) *Discord {
	return &Discord{session: session, presences: presences}
}

func (d *Discord) Member(ctx context.Context, guildID, userID string) (domain.Member, error) {
	member, err := d.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to fetch member %s: %w", userID, err)
	}

	roles, err := d.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to fetch roles of guild %s: %w", guildID, err)
	}

	out := toMember(member)
	applyRoles(&out, roles)

	presence, err := d.presences.Presence(guildID, userID)
	if err != nil {
		log.Debug().Err(err).Str("userId", userID).Msg("no cached presence, assuming offline")
		out.Status = string(discordgo.StatusOffline)
		return out, nil
	}

	out.Status = string(presence.Status)
	for _, activity := range presence.Activities {
		if activity != nil && activity.Name != "" {
			out.Activities = append(out.Activities, activity.Name)
		}
	}

	return out, nil
}

func (d *Discord) Members(ctx context.Context, guildID string) ([]domain.Member, error) {
	var (
		members []domain.Member
		after   string
	)

	for {
		page, err := d.session.GuildMembers(guildID, after, membersPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list members of guild %s: %w", guildID, err)
		}

		last := after
		for _, m := range page {
			if m.User == nil {
				continue
			}
			members = append(members, toMember(m))
			after = m.User.ID
		}

		if len(page) < membersPageSize {
			return members, nil
		}

		if after == last {
			return nil, fmt.Errorf("member listing of guild %s did not advance past %q", guildID, after)
		}
	}
}

func toMember(m *discordgo.Member) domain.Member {
	out := domain.Member{
		RoleIDs:  m.Roles,
		JoinedAt: m.JoinedAt,
	}

	if m.User == nil {
		return out
	}

	out.User = domain.User{
		ID:          m.User.ID,
		Username:    m.User.Username,
		DisplayName: displayName(m),
		AvatarURL:   m.User.AvatarURL(""),
		Bot:         m.User.Bot,
	}
	out.Tag = m.User.String()

	created, err := discordgo.SnowflakeTimestamp(m.User.ID)
	if err == nil {
		out.CreatedAt = created
	}

	return out
}

func displayName(m *discordgo.Member) string {
	switch {
	case m.Nick != "":
		return m.Nick
	case m.User.GlobalName != "":
		return m.User.GlobalName
	default:
		return m.User.Username
	}
}

// applyRoles sets the highest role of the member and the colour of the highest coloured role.
func applyRoles(member *domain.Member, guildRoles []*discordgo.Role) {
	byID := make(map[string]*discordgo.Role, len(guildRoles))
	for _, r := range guildRoles {
		byID[r.ID] = r
	}

	var top, colored *discordgo.Role
	for _, id := range member.RoleIDs {
		r, ok := byID[id]
		if !ok {
			continue
		}
		if top == nil || r.Position > top.Position {
			top = r
		}
		if r.Color != 0 && (colored == nil || r.Position > colored.Position) {
			colored = r
		}
	}

	if top != nil {
		member.TopRole = domain.Role{ID: top.ID, Name: top.Name, Position: top.Position}
	} else {
		member.TopRole = domain.Role{Name: "@everyone"}
	}
	if colored != nil {
		member.Color = colored.Color
	}
}
