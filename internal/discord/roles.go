package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"gamebot/internal/bootstrap"
	"gamebot/internal/domain/rank"
)

// RoleManager applies leaderboard tiers as guild roles. It is called
// from a goroutine after every ledger write; callers log its errors and
// move on.
type RoleManager struct {
	cfg     bootstrap.Config
	log     *zap.SugaredLogger
	session *discordgo.Session
}

func NewRoleManager(cfg bootstrap.Config, log *zap.SugaredLogger) (*RoleManager, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("discord gateway: %w", err)
	}

	log.Info("discord session opened")
	return &RoleManager{
		cfg:     cfg,
		log:     log,
		session: dg,
	}, nil
}

func (m *RoleManager) Close() error {
	return m.session.Close()
}

// AssignTier gives the user the tier's role, removing any other tier
// role first. Missing roles are created with the tier color.
func (m *RoleManager) AssignTier(userID string, tier rank.Tier) error {
	guildID := m.cfg.GuildID

	member, err := m.session.GuildMember(guildID, userID)
	if err != nil {
		return fmt.Errorf("fetch member %s: %w", userID, err)
	}

	roles, err := m.session.GuildRoles(guildID)
	if err != nil {
		return fmt.Errorf("fetch roles: %w", err)
	}

	byID := make(map[string]*discordgo.Role, len(roles))
	var target *discordgo.Role
	for _, r := range roles {
		byID[r.ID] = r
		if r.Name == tier.Name {
			target = r
		}
	}

	for _, id := range member.Roles {
		if r, ok := byID[id]; ok && r.Name == tier.Name {
			// nothing to change
			return nil
		}
	}

	for _, id := range member.Roles {
		r, ok := byID[id]
		if !ok || !rank.IsTierName(r.Name) {
			continue
		}
		if err := m.session.GuildMemberRoleRemove(guildID, userID, id); err != nil {
			return fmt.Errorf("remove role %s: %w", r.Name, err)
		}
	}

	if target == nil {
		color := tier.Color
		target, err = m.session.GuildRoleCreate(guildID, &discordgo.RoleParams{
			Name:  tier.Name,
			Color: &color,
		})
		if err != nil {
			return fmt.Errorf("create role %s: %w", tier.Name, err)
		}
		m.log.Infof("created role %s", tier.Name)
	}

	if err := m.session.GuildMemberRoleAdd(guildID, userID, target.ID); err != nil {
		return fmt.Errorf("add role %s: %w", tier.Name, err)
	}

	m.log.Infof("user %s moved to tier %s", userID, tier.Name)
	return nil
}
