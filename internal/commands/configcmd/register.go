// Package configcmd registers the /config command group.
package configcmd

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterConfigCommands registers the /config command group. The access
// policy of the group itself is special cased by the permission evaluator:
// only the server owner or explicitly whitelisted roles may use it.
func RegisterConfigCommands(client *discord.ExtendedClient) {
	toggleCmd := createToggleCommand()
	publicCmd := createPublicCommand()
	whitelistCmd := createWhitelistCommand()
	blacklistCmd := createBlacklistCommand()
	staffRoleCmd := createStaffRoleCommand()
	channelCmd := createChannelCommand()
	inviteCmd := createInviteCommand()
	systemCmd := createSystemCommand()
	msgLogExcludeCmd := createMessageLogsBlacklistCommand()
	discoverCmd := createDiscoverCommand()
	registerCmd := createRegisterCommand()
	banEmbedCmd := createBanEmbedCommand()
	viewCmd := createViewCommand()
	resetCmd := createResetCommand()

	// The automod rules live under their own subcommand group
	automodGroup := client.CommandHandler.BuildSubcommandGroup(
		"config",
		"automod",
		"Reglas de escalación automática",
		createAutomodAddCommand(),
		createAutomodRemoveCommand(),
		createAutomodListCommand(),
	)

	configGroup := client.CommandHandler.BuildCommandGroup(
		"config",
		"Configuración del bot de moderación",
		toggleCmd,
		publicCmd,
		whitelistCmd,
		blacklistCmd,
		staffRoleCmd,
		channelCmd,
		inviteCmd,
		systemCmd,
		msgLogExcludeCmd,
		discoverCmd,
		registerCmd,
		banEmbedCmd,
		viewCmd,
		resetCmd,
	)
	configGroup.Options = append(configGroup.Options, automodGroup)

	// Register the top level command for policy discovery
	client.Commands.Set("config", discord.NewCommand("config", "Configuración del bot de moderación", "config", nil))

	client.CommandHandler.AddGlobalCommand(configGroup)
}
