// Package configcmd provides the /config command group for managing the
// moderation configuration: command policies, staff roles, channel routing,
// automod rules and system toggles.
package configcmd

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createToggleCommand creates the /config toggle subcommand
func createToggleCommand() *discord.Command {
	return discord.NewCommand(
		"toggle",
		"Habilita o deshabilita un comando",
		"config",
		toggleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "comando",
			Description: "Nombre del comando",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "activado",
			Description: "true para habilitar, false para deshabilitar",
			Required:    true,
		},
	).RequiresDatabase()
}

// toggleHandler handles the /config toggle command
func toggleHandler(ctx *discord.CommandContext) error {
	command := ctx.GetStringOption("comando")
	enabled := ctx.GetBoolOption("activado")

	if _, err := database.SetCommandEnabled(command, enabled); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo actualizar la configuración: %v", err))
	}

	mqtt.PublishConfigChanged("commands")

	state := "deshabilitado ❌"
	if enabled {
		state = "habilitado ✅"
	}
	return ctx.Reply(fmt.Sprintf("⚙️ El comando `%s` ahora está %s.", command, state))
}

// createPublicCommand creates the /config public subcommand
func createPublicCommand() *discord.Command {
	return discord.NewCommand(
		"public",
		"Marca un comando como público o solo-staff",
		"config",
		publicHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "comando",
			Description: "Nombre del comando",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "publico",
			Description: "true para público, false para solo-staff",
			Required:    true,
		},
	).RequiresDatabase()
}

// publicHandler handles the /config public command
func publicHandler(ctx *discord.CommandContext) error {
	command := ctx.GetStringOption("comando")
	isPublic := ctx.GetBoolOption("publico")

	if _, err := database.SetCommandPublic(command, isPublic); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo actualizar la configuración: %v", err))
	}

	mqtt.PublishConfigChanged("commands")

	kind := "solo-staff 🛡️"
	if isPublic {
		kind = "público 🌐"
	}
	return ctx.Reply(fmt.Sprintf("⚙️ El comando `%s` ahora es %s.", command, kind))
}

// roleListOptions are shared by the whitelist and blacklist subcommands
func roleListOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "accion",
			Description: "Añadir o quitar el rol, o vaciar la lista",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "añadir", Value: "add"},
				{Name: "quitar", Value: "remove"},
				{Name: "limpiar", Value: "clear"},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "comando",
			Description: "Nombre del comando",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol afectado (no aplica al limpiar)",
			Required:    false,
		},
	}
}

// createWhitelistCommand creates the /config whitelist subcommand
func createWhitelistCommand() *discord.Command {
	return discord.NewCommand(
		"whitelist",
		"Gestiona la whitelist de roles de un comando",
		"config",
		func(ctx *discord.CommandContext) error { return roleListHandler(ctx, "whitelist") },
	).WithOptions(roleListOptions()...).RequiresDatabase()
}

// createBlacklistCommand creates the /config blacklist subcommand
func createBlacklistCommand() *discord.Command {
	return discord.NewCommand(
		"blacklist",
		"Gestiona la blacklist de roles de un comando",
		"config",
		func(ctx *discord.CommandContext) error { return roleListHandler(ctx, "blacklist") },
	).WithOptions(roleListOptions()...).RequiresDatabase()
}

// roleListHandler handles whitelist and blacklist mutations
func roleListHandler(ctx *discord.CommandContext, listType string) error {
	action := ctx.GetStringOption("accion")
	command := ctx.GetStringOption("comando")

	if action == "clear" {
		clear := database.SetCommandWhitelist
		if listType == "blacklist" {
			clear = database.SetCommandBlacklist
		}
		if _, err := clear(command, []string{}); err != nil {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo vaciar la %s: %v", listType, err))
		}
		mqtt.PublishConfigChanged("commands")
		return ctx.Reply(fmt.Sprintf("⚙️ La %s de `%s` ha quedado vacía.", listType, command))
	}

	role := ctx.GetRoleOption("rol")
	if role == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un rol.")
	}

	if _, err := database.UpdateCommandRoleList(listType, command, role.ID, action == "add"); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo actualizar la %s: %v", listType, err))
	}

	mqtt.PublishConfigChanged("commands")

	verb := "quitado de"
	if action == "add" {
		verb = "añadido a"
	}
	return ctx.Reply(fmt.Sprintf("⚙️ Rol <@&%s> %s la %s de `%s`.", role.ID, verb, listType, command))
}

// createRegisterCommand creates the /config register subcommand
func createRegisterCommand() *discord.Command {
	return discord.NewCommand(
		"register",
		"Registra un comando manualmente en la configuración",
		"config",
		registerHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "comando",
			Description: "Nombre del comando",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "publico",
			Description: "true para público (por defecto: solo-staff)",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "activado",
			Description: "false para registrarlo deshabilitado",
			Required:    false,
		},
	).RequiresDatabase()
}

// registerHandler handles the /config register command
func registerHandler(ctx *discord.CommandContext) error {
	command := ctx.GetStringOption("comando")
	isPublic := ctx.GetBoolOption("publico")
	enabled := true
	if opt := ctx.GetOption("activado"); opt != nil {
		enabled = opt.BoolValue()
	}

	policy, err := database.RegisterCommand(command, isPublic, enabled)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo registrar el comando: %v", err))
	}

	mqtt.PublishConfigChanged("commands")

	kind := "solo-staff 🛡️"
	if policy.IsPublic {
		kind = "público 🌐"
	}
	state := "deshabilitado ❌"
	if policy.Enabled {
		state = "habilitado ✅"
	}
	return ctx.Reply(fmt.Sprintf("⚙️ Comando `%s` registrado: %s, %s.", command, kind, state))
}
