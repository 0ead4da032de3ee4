// Package configcmd - /config staffrole command
package configcmd

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createStaffRoleCommand creates the /config staffrole subcommand
func createStaffRoleCommand() *discord.Command {
	return discord.NewCommand(
		"staffrole",
		"Gestiona los roles de staff globales",
		"config",
		staffRoleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "accion",
			Description: "Añadir, quitar o listar",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "añadir", Value: "add"},
				{Name: "quitar", Value: "remove"},
				{Name: "listar", Value: "list"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol de staff (requerido para añadir/quitar)",
			Required:    false,
		},
	).RequiresDatabase()
}

// staffRoleHandler handles the /config staffrole command
func staffRoleHandler(ctx *discord.CommandContext) error {
	action := ctx.GetStringOption("accion")

	if action == "list" {
		roles, err := database.GetStaffRoles()
		if err != nil {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudieron consultar los roles: %v", err))
		}
		if len(roles) == 0 {
			return ctx.ReplyEphemeral("📭 No hay roles de staff configurados.")
		}
		mentions := make([]string, 0, len(roles))
		for _, id := range roles {
			mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
		}
		return ctx.ReplyEphemeral("🛡️ Roles de staff: " + strings.Join(mentions, ", "))
	}

	role := ctx.GetRoleOption("rol")
	if role == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un rol.")
	}

	if _, err := database.SetStaffRole(role.ID, action == "add"); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo actualizar los roles de staff: %v", err))
	}

	mqtt.PublishConfigChanged("staffRoles")

	if action == "add" {
		return ctx.Reply(fmt.Sprintf("🛡️ <@&%s> ahora es un rol de staff.", role.ID))
	}
	return ctx.Reply(fmt.Sprintf("🛡️ <@&%s> ya no es un rol de staff.", role.ID))
}
