package command

import (
	"context"
	"errors"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout      = "2006/01/02"
	timestampLayout = "2006-01-02 15:04:05"
	oldestCommand   = "oldest"
)

var memberMentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

type MemberInfo struct {
	members       port.MemberFinder
	stats         port.MessageStats
	sender        port.Replier
	flaggedRoleID string
	command       string
	now           func() time.Time
}

type MemberInfoParams struct {
	Members       port.MemberFinder
	Stats         port.MessageStats
	Sender        port.Replier
	FlaggedRoleID string
	Command       string
}

func NewMemberInfo(p MemberInfoParams) *MemberInfo {
	return &MemberInfo{
		members:       p.Members,
		stats:         p.Stats,
		sender:        p.Sender,
		flaggedRoleID: p.FlaggedRoleID,
		command:       p.Command,
		now:           time.Now,
	}
}

func (m *MemberInfo) GetCommand() string {
	return m.command
}

func (m *MemberInfo) GetAliases() []string {
	return []string{"member"}
}

func (m *MemberInfo) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, m.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if message.IsDirect() {
		return m.sender.NotifyAndReturnError(ctx,
			domain.NewBadArgument("This command cannot be used in private messages."), message)
	}

	arg := ParseCommandArgs(message.Text)
	if strings.EqualFold(arg, oldestCommand) {
		return m.oldest(ctx, message)
	}

	member, err := m.resolve(ctx, message, arg)
	if err != nil {
		return m.sender.NotifyAndReturnError(ctx, err, message)
	}

	count, err := m.stats.MessageCount(ctx, member.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUnexpectedStatus) {
			err = domain.NewBadArgument("Bad response from EMKC API")
		}
		return m.sender.NotifyAndReturnError(ctx, err, message)
	}

	daysInGuild := m.now().Sub(member.JoinedAt).Hours() / 24

	return m.sender.SendEmbedReply(ctx, message, &domain.Embed{
		Color:        member.Color,
		ThumbnailURL: member.AvatarURL,
		Footer:       authorFooter(message.Author),
		Fields: []domain.EmbedField{
			{Name: "Username:", Value: member.Tag, Inline: true},
			{Name: "Display name:", Value: member.DisplayName, Inline: true},
			{Name: "Account created at:", Value: member.CreatedAt.UTC().Format(dateLayout), Inline: true},
			{Name: "Status:", Value: titleCase(member.Status), Inline: true},
			{Name: "Joined at:", Value: member.JoinedAt.UTC().Format(dateLayout), Inline: true},
			{Name: "Top role:", Value: member.TopRole.Mention(), Inline: true},
			{Name: "Message count:", Value: strconv.Itoa(count), Inline: true},
			{Name: "Messages per day:", Value: MessagesPerDay(count, daysInGuild), Inline: true},
			{Name: "Flagged:", Value: flagged(member.HasRole(m.flaggedRoleID)), Inline: true},
			{Name: "Current activities:", Value: activities(member.Activities), Inline: true},
		},
	})
}

// resolve finds the member named by a mention, an ID or a name. An empty argument means the author.
func (m *MemberInfo) resolve(ctx context.Context, message *domain.Message, arg string) (domain.Member, error) {
	if arg == "" {
		return m.members.Member(ctx, message.GuildID, message.Author.ID)
	}

	id := arg
	if match := memberMentionPattern.FindStringSubmatch(arg); match != nil {
		id = match[1]
	}

	if _, err := strconv.ParseUint(id, 10, 64); err == nil {
		member, err := m.members.Member(ctx, message.GuildID, id)
		if err != nil {
			return domain.Member{}, domain.NewBadArgument("Member \"%s\" not found.", arg)
		}
		return member, nil
	}

	members, err := m.members.Members(ctx, message.GuildID)
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to list members: %w", err)
	}

	for _, candidate := range members {
		if strings.EqualFold(candidate.Tag, arg) || strings.EqualFold(candidate.Username, arg) ||
			strings.EqualFold(candidate.DisplayName, arg) {
			return m.members.Member(ctx, message.GuildID, candidate.ID)
		}
	}

	return domain.Member{}, domain.NewBadArgument("Member \"%s\" not found.", arg)
}

func (m *MemberInfo) oldest(ctx context.Context, message *domain.Message) error {
	members, err := m.members.Members(ctx, message.GuildID)
	if err != nil {
		return m.sender.NotifyAndReturnError(ctx, fmt.Errorf("failed to list members: %w", err), message)
	}

	oldest, ok := OldestMember(members)
	if !ok {
		return nil
	}

	_, err = m.sender.SendMessageReply(ctx, message, fmt.Sprintf(
		"Oldest Discord account on this Server:\n`%s created %s`",
		oldest.Tag, oldest.CreatedAt.UTC().Format(timestampLayout)))

	return err
}

// OldestMember returns the member with the earliest account creation time.
func OldestMember(members []domain.Member) (domain.Member, bool) {
	if len(members) == 0 {
		return domain.Member{}, false
	}

	oldest := members[0]
	for _, member := range members[1:] {
		if member.CreatedAt.Before(oldest.CreatedAt) {
			oldest = member
		}
	}

	return oldest, true
}

// MessagesPerDay reports the daily message rate rounded to one decimal. Members that joined less
// than a day ago get their raw message count.
func MessagesPerDay(count int, days float64) string {
	if days < 1 {
		return strconv.Itoa(count)
	}

	rate := math.Round(float64(count)/days*10) / 10

	return strconv.FormatFloat(rate, 'f', 1, 64)
}

func activities(names []string) string {
	if len(names) == 0 {
		return "No current activities"
	}

	return strings.Join(names, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func flagged(ok bool) string {
	if ok {
		return "True"
	}

	return "False"
}
