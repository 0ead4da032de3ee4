// Package appeal - /appeal review, pending and status commands
package appeal

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// requireStaff gates the review subcommands. The /appeal group is public so
// users can file appeals, so the staff check lives here instead of the
// command policy.
func requireStaff(ctx *discord.CommandContext) (bool, error) {
	var roleIDs []string
	if member := ctx.Member(); member != nil {
		roleIDs = member.Roles
	}

	if guild := ctx.Guild(); guild != nil && guild.OwnerID == ctx.User().ID {
		return true, nil
	}
	return database.IsUserStaff(roleIDs)
}

// createReviewCommand creates the /appeal review subcommand
func createReviewCommand() *discord.Command {
	return discord.NewCommand(
		"review",
		"Resuelve una apelación pendiente (staff)",
		"appeal",
		reviewHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "caso",
			Description: "Número del caso apelado (ej: 0004)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario que envió la apelación",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "decision",
			Description: "Resolución de la apelación",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "aprobar", Value: "approved"},
				{Name: "denegar", Value: "denied"},
			},
		},
	).RequiresDatabase()
}

// reviewHandler handles the /appeal review command
func reviewHandler(ctx *discord.CommandContext) error {
	isStaff, err := requireStaff(ctx)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo verificar tus permisos: %v", err))
	}
	if !isStaff {
		return ctx.ReplyEphemeral("🚫 Solo el staff puede revisar apelaciones.")
	}

	caseID := ctx.GetStringOption("caso")
	user := ctx.GetUserOption("usuario")
	status := models.AppealStatus(ctx.GetStringOption("decision"))
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes indicar el usuario que apeló.")
	}

	record, err := database.UpdateAppealStatus(caseID, user.ID, status, ctx.User().ID)
	if err != nil {
		if err == database.ErrInvalidAppealStatus {
			return ctx.ReplyEphemeral("❌ Decisión inválida.")
		}
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo resolver la apelación: %v", err))
	}
	if record == nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("⚠️ No hay apelación pendiente del caso `#%s` para <@%s>, o ya fue resuelta.", caseID, user.ID))
	}

	mqtt.PublishAppealResolved(record)
	notifyAppealResolution(ctx, record)

	return ctx.ReplyEmbed(appealEmbed(record))
}

// notifyAppealResolution DMs the resolution to the appellant
func notifyAppealResolution(ctx *discord.CommandContext, record *models.Appeal) {
	channel, err := ctx.Session.UserChannelCreate(record.UserID)
	if err != nil {
		return
	}

	verdict := "✅ Tu apelación ha sido **aprobada**."
	if record.Status == models.AppealDenied {
		verdict = "❌ Tu apelación ha sido **denegada**."
	}
	_, _ = ctx.Session.ChannelMessageSend(channel.ID, fmt.Sprintf("%s (caso `#%s`)", verdict, record.CaseID))
}

// createPendingCommand creates the /appeal pending subcommand
func createPendingCommand() *discord.Command {
	return discord.NewCommand(
		"pending",
		"Lista las apelaciones pendientes (staff)",
		"appeal",
		pendingHandler,
	).RequiresDatabase()
}

// pendingHandler handles the /appeal pending command
func pendingHandler(ctx *discord.CommandContext) error {
	isStaff, err := requireStaff(ctx)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo verificar tus permisos: %v", err))
	}
	if !isStaff {
		return ctx.ReplyEphemeral("🚫 Solo el staff puede ver la cola de apelaciones.")
	}

	appeals, err := database.GetAllPendingAppeals()
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudieron consultar las apelaciones: %v", err))
	}

	if len(appeals) == 0 {
		return ctx.ReplyEphemeral("📭 No hay apelaciones pendientes.")
	}

	var lines []string
	for _, a := range appeals {
		lines = append(lines, fmt.Sprintf("`%s` — caso `#%s` de <@%s> (%s)",
			a.ID, a.CaseID, a.UserID, statusTimestamp(&a.SubmittedAt)))
	}

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⏳ Apelaciones pendientes (%d)", len(appeals)),
		Description: strings.Join(lines, "\n"),
		Color:       0xFFCC00,
	})
}

// createStatusCommand creates the /appeal status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado de tus apelaciones",
		"appeal",
		statusHandler,
	).RequiresDatabase()
}

// statusHandler handles the /appeal status command
func statusHandler(ctx *discord.CommandContext) error {
	appeals, err := database.GetAppealHistory(ctx.User().ID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudieron consultar tus apelaciones: %v", err))
	}

	if len(appeals) == 0 {
		return ctx.ReplyEphemeral("📭 No has enviado ninguna apelación.")
	}

	var lines []string
	for _, a := range appeals {
		lines = append(lines, fmt.Sprintf("`%s` — caso `#%s`: **%s** (revisada: %s)",
			a.ID, a.CaseID, a.Status, statusTimestamp(a.ProcessedAt)))
	}

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📨 Tus apelaciones (%d)", len(appeals)),
		Description: strings.Join(lines, "\n"),
		Color:       0x5865F2,
	})
}
