// Package mod provides moderation commands organized as subcommands under /mod
package mod

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient) {
	// Create individual subcommands (each can be in its own file)
	banCmd := createBanCommand()
	unbanCmd := createUnbanCommand()
	kickCmd := createKickCommand()
	warnCmd := createWarnCommand()
	muteCmd := createMuteCommand()
	unmuteCmd := createUnmuteCommand()
	warningsCmd := createWarningsCommand()
	removeWarnCmd := createRemoveWarnCommand()
	caseCmd := createCaseCommand()
	reasonCmd := createReasonCommand()
	noteCmd := createNoteCommand()
	notesCmd := createNotesCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		banCmd,
		unbanCmd,
		kickCmd,
		warnCmd,
		muteCmd,
		unmuteCmd,
		warningsCmd,
		removeWarnCmd,
		caseCmd,
		reasonCmd,
		noteCmd,
		notesCmd,
	)

	// Register the top level command for policy discovery
	client.Commands.Set("mod", discord.NewCommand("mod", "Comandos de moderación", "mod", nil))

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
