// Package mod - /mod unban command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createUnbanCommand creates the /mod unban subcommand
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Retira el ban de un usuario",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "usuario",
			Description: "ID del usuario a desbanear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del unban",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers).
		RequiresDatabase()
}

// unbanHandler handles the /mod unban command
func unbanHandler(ctx *discord.CommandContext) error {
	userID := ctx.GetStringOption("usuario")
	if userID == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar el ID del usuario.")
	}

	reason := ctx.GetStringOption("razon")

	if err := ctx.Session.GuildBanDelete(ctx.Interaction.GuildID, userID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al desbanear: %v", err))
	}

	record, err := database.LogAction(models.ActionUnban, userID, ctx.User().ID, reason, nil)
	if err != nil {
		return ctx.Reply(fmt.Sprintf("🕊️ <@%s> ha sido desbaneado, pero el caso no pudo registrarse: %v", userID, err))
	}

	announceCase(ctx, record)
	return ctx.ReplyEmbed(caseEmbed(record))
}
