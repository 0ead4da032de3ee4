// Package appeal registers the /appeal command group.
package appeal

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterAppealCommands registers the /appeal command group
func RegisterAppealCommands(client *discord.ExtendedClient) {
	submitCmd := createSubmitCommand()
	statusCmd := createStatusCommand()
	pendingCmd := createPendingCommand()
	reviewCmd := createReviewCommand()

	appealGroup := client.CommandHandler.BuildCommandGroup(
		"appeal",
		"Apelaciones de sanciones",
		submitCmd,
		statusCmd,
		pendingCmd,
		reviewCmd,
	)

	// Public so sanctioned users can file, review subcommands gate on staff
	client.Commands.Set("appeal", discord.NewCommand("appeal", "Apelaciones de sanciones", "appeal", nil).AsPublic())

	client.CommandHandler.AddGlobalCommand(appealGroup)
}
