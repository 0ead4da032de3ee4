// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// actionDisplay maps an action type to its embed emoji and Spanish label
func actionDisplay(t models.ActionType) (string, string) {
	switch t {
	case models.ActionWarn:
		return "⚠️", "Advertencia"
	case models.ActionMute:
		return "🔇", "Mute"
	case models.ActionBan:
		return "🔨", "Ban"
	case models.ActionKick:
		return "👢", "Expulsión"
	case models.ActionUnban:
		return "🕊️", "Unban"
	case models.ActionUnmute:
		return "🔊", "Unmute"
	}
	return "📋", string(t)
}

// caseEmbed builds the standard embed used for case replies and log posts
func caseEmbed(record *models.ModerationCase) *discordgo.MessageEmbed {
	emoji, label := actionDisplay(record.Type)

	fields := []*discordgo.MessageEmbedField{
		{Name: "Usuario", Value: fmt.Sprintf("<@%s>", record.UserID), Inline: true},
		{Name: "Moderador", Value: fmt.Sprintf("<@%s>", record.ModeratorID), Inline: true},
		{Name: "Razón", Value: record.Reason},
	}
	if record.Duration != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Duración",
			Value:  formatDurationMs(*record.Duration),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("%s %s | Caso #%s", emoji, label, record.CaseID),
		Color:     0x5865F2,
		Fields:    fields,
		Timestamp: record.Timestamp,
	}
}

// announceCase posts the case to the configured logs channel and publishes
// it on the event bus. Failures are logged, never surfaced to the moderator.
func announceCase(ctx *discord.CommandContext, record *models.ModerationCase) {
	mqtt.PublishCaseLogged(record)

	enabled, err := database.IsLoggingEnabled()
	if err != nil || !enabled {
		return
	}
	channelID, err := database.GetLogsChannel()
	if err != nil || channelID == "" {
		return
	}

	if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, caseEmbed(record)); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar el caso %s en el canal de logs: %v", record.CaseID, err), "ModLog")
	}
}

// parseDurationMs parses inputs like "30s", "10m", "2h" or "1d" into
// milliseconds. Days are not part of time.ParseDuration, handled apart.
func parseDurationMs(input string) (int64, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if strings.HasSuffix(input, "d") {
		var days float64
		if _, err := fmt.Sscanf(input, "%fd", &days); err != nil {
			return 0, fmt.Errorf("duración inválida: %s", input)
		}
		return int64(days * 24 * float64(time.Hour/time.Millisecond)), nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("duración inválida: %s", input)
	}
	if d <= 0 {
		return 0, fmt.Errorf("la duración debe ser positiva")
	}
	return d.Milliseconds(), nil
}

// formatDurationMs renders a millisecond duration for embeds
func formatDurationMs(ms int64) string {
	d := time.Duration(ms) * time.Millisecond

	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}

// applyAutomod escalates after a warning when the warning count crosses a
// configured threshold. The escalation is recorded as its own case with the
// bot as moderator.
func applyAutomod(ctx *discord.CommandContext, userID string) {
	count, err := database.CountUserWarnings(userID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Automod: no se pudo contar advertencias de %s: %v", userID, err), "Automod")
		return
	}

	rule, err := database.GetAutomodActionForWarnings(count)
	if err != nil || rule == nil {
		return
	}

	botID := ctx.Session.State.User.ID
	guildID := ctx.Interaction.GuildID
	reason := fmt.Sprintf("Automod: %d advertencias alcanzadas (umbral %d)", count, rule.Threshold)

	switch models.ActionType(rule.Action) {
	case models.ActionMute:
		duration := int64(10 * time.Minute / time.Millisecond)
		if rule.Duration != nil {
			duration = *rule.Duration
		}
		until := time.Now().Add(time.Duration(duration) * time.Millisecond)
		if err := ctx.Session.GuildMemberTimeout(guildID, userID, &until); err != nil {
			logger.Error(fmt.Sprintf("Automod: fallo al mutear a %s: %v", userID, err), "Automod")
			return
		}
		record, err := database.LogAction(models.ActionMute, userID, botID, reason, &duration)
		if err == nil {
			announceCase(ctx, record)
		}

	case models.ActionKick:
		if err := ctx.Session.GuildMemberDeleteWithReason(guildID, userID, reason); err != nil {
			logger.Error(fmt.Sprintf("Automod: fallo al expulsar a %s: %v", userID, err), "Automod")
			return
		}
		record, err := database.LogAction(models.ActionKick, userID, botID, reason, nil)
		if err == nil {
			announceCase(ctx, record)
		}

	case models.ActionBan:
		sendBanNotice(ctx, userID)
		if err := ctx.Session.GuildBanCreateWithReason(guildID, userID, reason, 0); err != nil {
			logger.Error(fmt.Sprintf("Automod: fallo al banear a %s: %v", userID, err), "Automod")
			return
		}
		record, err := database.LogAction(models.ActionBan, userID, botID, reason, nil)
		if err == nil {
			announceCase(ctx, record)
		}

	default:
		logger.Warn(fmt.Sprintf("Automod: acción desconocida '%s' en la regla de umbral %d", rule.Action, rule.Threshold), "Automod")
	}
}

// sendBanNotice DMs the configured ban embed to the user, with the appeal
// invite when appeals are enabled. Must run before the ban closes the DM.
func sendBanNotice(ctx *discord.CommandContext, userID string) {
	template, err := database.GetBanEmbedTemplate()
	if err != nil {
		return
	}

	serverName := ctx.Interaction.GuildID
	if guild := ctx.Guild(); guild != nil {
		serverName = guild.Name
	}
	rendered := template.Render(serverName)

	embed := &discordgo.MessageEmbed{
		Title:       rendered.Title,
		Description: rendered.Description,
		Color:       rendered.Color,
		Footer:      &discordgo.MessageEmbedFooter{Text: rendered.Footer},
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if enabled, err := database.IsAppealsEnabled(); err == nil && enabled {
		if invite, err := database.GetAppealInvite(); err == nil && invite != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Apelaciones",
				Value: fmt.Sprintf("Puedes apelar esta sanción aquí: %s", invite),
			})
		}
	}

	channel, err := ctx.Session.UserChannelCreate(userID)
	if err != nil {
		return
	}
	_, _ = ctx.Session.ChannelMessageSendEmbed(channel.ID, embed)
}
