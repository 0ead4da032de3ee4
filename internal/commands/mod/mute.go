// Package mod - /mod mute and /mod unmute commands
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createMuteCommand creates the /mod mute subcommand
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Mutea temporalmente a un usuario (timeout)",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a mutear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración del mute (ej: 30s, 10m, 2h, 1d)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del mute",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// muteHandler handles the /mod mute command
func muteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	durationMs, err := parseDurationMs(ctx.GetStringOption("duracion"))
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ %v", err))
	}

	reason := ctx.GetStringOption("razon")

	until := time.Now().Add(time.Duration(durationMs) * time.Millisecond)
	if err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, &until); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al mutear: %v", err))
	}

	record, err := database.LogAction(models.ActionMute, user.ID, ctx.User().ID, reason, &durationMs)
	if err != nil {
		return ctx.Reply(fmt.Sprintf("🔇 **%s** ha sido muteado, pero el caso no pudo registrarse: %v", user.Username, err))
	}

	announceCase(ctx, record)
	return ctx.ReplyEmbed(caseEmbed(record))
}

// createUnmuteCommand creates the /mod unmute subcommand
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Retira el mute de un usuario",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a desmutear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del unmute",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// unmuteHandler handles the /mod unmute command
func unmuteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	reason := ctx.GetStringOption("razon")

	if err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, nil); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al desmutear: %v", err))
	}

	record, err := database.LogAction(models.ActionUnmute, user.ID, ctx.User().ID, reason, nil)
	if err != nil {
		return ctx.Reply(fmt.Sprintf("🔊 **%s** ha sido desmuteado, pero el caso no pudo registrarse: %v", user.Username, err))
	}

	announceCase(ctx, record)
	return ctx.ReplyEmbed(caseEmbed(record))
}
