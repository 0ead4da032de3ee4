// Package configcmd - /config channel, invite and system commands
package configcmd

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createChannelCommand creates the /config channel subcommand
func createChannelCommand() *discord.Command {
	return discord.NewCommand(
		"channel",
		"Configura los canales de logs y apelaciones",
		"config",
		channelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tipo",
			Description: "Qué canal configurar",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "logs de moderación", Value: "logs"},
				{Name: "logs de mensajes", Value: "messagelogs"},
				{Name: "apelaciones", Value: "appeals"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal de destino",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).RequiresDatabase()
}

// channelHandler handles the /config channel command
func channelHandler(ctx *discord.CommandContext) error {
	kind := ctx.GetStringOption("tipo")
	channel := ctx.GetChannelOption("canal")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un canal.")
	}

	var err error
	var label string
	switch kind {
	case "logs":
		_, err = database.SetLogsChannel(channel.ID)
		label = "logs de moderación"
	case "messagelogs":
		_, err = database.SetMessageLogsChannel(channel.ID)
		label = "logs de mensajes"
	case "appeals":
		_, err = database.SetAppealsChannel(channel.ID)
		label = "apelaciones"
	default:
		return ctx.ReplyEphemeral("❌ Tipo de canal desconocido.")
	}
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo guardar el canal: %v", err))
	}

	mqtt.PublishConfigChanged("channels")
	return ctx.Reply(fmt.Sprintf("📨 Canal de %s fijado a <#%s>.", label, channel.ID))
}

// createInviteCommand creates the /config invite subcommand
func createInviteCommand() *discord.Command {
	return discord.NewCommand(
		"invite",
		"Fija el enlace del servidor de apelaciones",
		"config",
		inviteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "enlace",
			Description: "Invitación al servidor de apelaciones",
			Required:    true,
		},
	).RequiresDatabase()
}

// inviteHandler handles the /config invite command
func inviteHandler(ctx *discord.CommandContext) error {
	invite := ctx.GetStringOption("enlace")

	if _, err := database.SetAppealInvite(invite); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo guardar la invitación: %v", err))
	}

	mqtt.PublishConfigChanged("appeals")
	return ctx.Reply(fmt.Sprintf("🔗 Invitación de apelaciones fijada: %s", invite))
}

// createSystemCommand creates the /config system subcommand
func createSystemCommand() *discord.Command {
	return discord.NewCommand(
		"system",
		"Activa o desactiva un sistema del bot",
		"config",
		systemHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "sistema",
			Description: "Sistema a configurar",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "logging de moderación", Value: "logging"},
				{Name: "logging de mensajes", Value: "messagelogging"},
				{Name: "apelaciones", Value: "appeals"},
				{Name: "automod", Value: "automod"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "activado",
			Description: "true para activar, false para desactivar",
			Required:    true,
		},
	).RequiresDatabase()
}

// systemHandler handles the /config system command
func systemHandler(ctx *discord.CommandContext) error {
	system := ctx.GetStringOption("sistema")
	enabled := ctx.GetBoolOption("activado")

	var err error
	var label string
	switch system {
	case "logging":
		_, err = database.SetLoggingEnabled(enabled)
		label = "logging de moderación"
	case "messagelogging":
		_, err = database.SetMessageLoggingEnabled(enabled)
		label = "logging de mensajes"
	case "appeals":
		_, err = database.SetAppealsEnabled(enabled)
		label = "apelaciones"
	case "automod":
		_, err = database.SetAutomodEnabled(enabled)
		label = "automod"
	default:
		return ctx.ReplyEphemeral("❌ Sistema desconocido.")
	}
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo actualizar el sistema: %v", err))
	}

	mqtt.PublishConfigChanged("systems")

	state := "desactivado ❌"
	if enabled {
		state = "activado ✅"
	}
	return ctx.Reply(fmt.Sprintf("⚙️ Sistema de %s %s.", label, state))
}

// createMessageLogsBlacklistCommand creates the /config msglogexclude subcommand
func createMessageLogsBlacklistCommand() *discord.Command {
	return discord.NewCommand(
		"msglogexclude",
		"Excluye o reincluye un canal del logging de mensajes",
		"config",
		messageLogsBlacklistHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "accion",
			Description: "Excluir o reincluir",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "excluir", Value: "add"},
				{Name: "reincluir", Value: "remove"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal afectado",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).RequiresDatabase()
}

// messageLogsBlacklistHandler handles the /config msglogexclude command
func messageLogsBlacklistHandler(ctx *discord.CommandContext) error {
	action := ctx.GetStringOption("accion")
	channel := ctx.GetChannelOption("canal")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un canal.")
	}

	var err error
	var cfg *models.GuildConfig
	if action == "add" {
		cfg, err = database.AddMessageLogsBlacklist(channel.ID)
	} else {
		cfg, err = database.RemoveMessageLogsBlacklist(channel.ID)
	}
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo actualizar la exclusión: %v", err))
	}

	mqtt.PublishConfigChanged("messageLogs")

	if action == "add" {
		return ctx.Reply(fmt.Sprintf("🔕 <#%s> excluido del logging de mensajes (%d exclusiones).", channel.ID, len(cfg.MessageLogsBlacklist)))
	}
	return ctx.Reply(fmt.Sprintf("🔔 <#%s> reincluido en el logging de mensajes.", channel.ID))
}
