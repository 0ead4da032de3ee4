package utils

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterUtilsCommands registers all utility commands as /utils subcommands
func RegisterUtilsCommands(client *discord.ExtendedClient) {
	// Create individual subcommands (each can be in its own file)
	pingCmd := createPingCommand()
	statusCmd := createStatusCommand()
	helpCmd := createHelpCommand()
	statsCmd := createStatsCommand()
	modStatsCmd := createModStatsCommand()

	// Build the /utils command group with all subcommands
	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Comandos de utilidad",
		pingCmd,
		statusCmd,
		helpCmd,
		statsCmd,
		modStatsCmd,
	)

	// Register the top level command for policy discovery
	client.Commands.Set("utils", discord.NewCommand("utils", "Comandos de utilidad", "utils", nil).AsPublic())

	// Register the command group
	client.CommandHandler.AddGlobalCommand(utilsGroup)
}
