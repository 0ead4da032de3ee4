package discord

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// PermissionMiddleware evalúa la política de acceso persistida antes de
// ejecutar un comando. The policy is keyed by the top level command name,
// subcommands inherit it.
func (c *ExtendedClient) PermissionMiddleware(ctx *CommandContext, commandName string) error {
	userID := ctx.User().ID

	var roleIDs []string
	if member := ctx.Member(); member != nil {
		roleIDs = member.Roles
	}

	isOwner := false
	if guild := ctx.Guild(); guild != nil {
		isOwner = guild.OwnerID == userID
	}

	decision, err := database.CheckCommandPermission(commandName, roleIDs, isOwner)
	if err != nil {
		logger.Error(fmt.Sprintf("Error evaluando permisos de '%s': %v", commandName, err), "Permissions")
		ctx.ReplyEphemeral("⚠️ No se pudo verificar tus permisos. Inténtalo de nuevo más tarde.")
		return err
	}

	if decision.Allowed {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🚫 Acceso Denegado",
		Description: fmt.Sprintf("No puedes usar `/%s` en este momento.", commandName),
		Color:       0xFF0000,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Razón",
				Value: decision.Reason.Message(),
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	_ = ctx.ReplyEphemeralEmbed(embed)

	logger.Warn(fmt.Sprintf("Permiso denegado para %s en '%s': %s", userID, commandName, decision.Reason), "Permissions")
	return fmt.Errorf("permission denied: %s", decision.Reason)
}
