package engine

import "github.com/nathoo/taipan/types"

// UI is the collaborator the engine drives for all player interaction.
// The engine blocks on each prompt; implementations (line-oriented CLI,
// full-screen TUI) decide presentation. Prompts never mutate game state.
type UI interface {
	// ReportMessage displays one line of narration to the player.
	ReportMessage(text string)

	// AskFirmName prompts for the trading firm's name at game start.
	AskFirmName() string

	// AskStartChoice picks one of the two starting bundles.
	AskStartChoice() types.StartChoice

	// AskPortAction presents the port menu and returns the choice.
	AskPortAction(s *types.GameState) types.PortAction

	// AskCommodity picks a commodity for a trade or warehouse move.
	AskCommodity(prompt string) types.Commodity

	// AskAmount prompts for a quantity or sum. max is advisory, shown to
	// the player; the return may be types.AllAmount, which the engine
	// resolves to the context-dependent maximum before validating.
	AskAmount(prompt string, max int) int

	// AskYesNo asks a yes/no question.
	AskYesNo(prompt string) bool

	// AskDestination picks a voyage destination from the port list.
	AskDestination(s *types.GameState) types.Port

	// AskBattleOrder requests the next combat order. numShips is the
	// hostile fleet still engaged.
	AskBattleOrder(s *types.GameState, numShips int) types.Order
}
