package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/nathoo/taipan/types"
)

// bridge implements the engine's UI contract on top of the Bubble Tea
// message loop. The engine runs in its own goroutine and blocks inside
// each Ask method; the Update loop feeds the player's line back over
// the reply channel. Invalid input reprompts without returning.
type bridge struct {
	prog  *tea.Program
	reply chan string
}

func newBridge() *bridge {
	return &bridge{reply: make(chan string)}
}

// ReportMessage pushes one narrative line into the viewport.
func (b *bridge) ReportMessage(text string) {
	b.prog.Send(lineMsg{text: text})
}

// prompt displays a prompt line and blocks until the player answers.
func (b *bridge) prompt(text string) string {
	b.prog.Send(promptMsg{text: text})
	return strings.TrimSpace(<-b.reply)
}

func (b *bridge) AskFirmName() string {
	name := b.prompt("What will you name your firm, Taipan?")
	if name == "" {
		name = "Taipan"
	}
	return name
}

func (b *bridge) AskStartChoice() types.StartChoice {
	for {
		switch strings.ToLower(b.prompt("Start with (c)ash and a debt, or five (g)uns and no cash?")) {
		case "c", "cash":
			return types.CashStart
		case "g", "guns":
			return types.GunsStart
		}
	}
}

func (b *bridge) AskPortAction(s *types.GameState) types.PortAction {
	actions := map[string]types.PortAction{
		"b": types.ActionBuy,
		"s": types.ActionSell,
		"k": types.ActionBank,
		"w": types.ActionWarehouse,
		"v": types.ActionVisitWu,
		"t": types.ActionTravel,
		"a": types.ActionSave,
		"q": types.ActionQuit,
		"r": types.ActionRetire,
	}
	b.prog.Send(pricesMsg{})
	for {
		input := strings.ToLower(b.prompt(
			"(B)uy, (S)ell, ban(K), (W)harf, (V)isit Wu, (T)ravel, s(A)ve, (Q)uit, (R)etire?"))
		if action, ok := actions[input]; ok {
			return action
		}
	}
}

func (b *bridge) AskCommodity(prompt string) types.Commodity {
	for {
		switch strings.ToLower(b.prompt(prompt + " (O)pium, (S)ilk, (A)rms, (G)eneral:")) {
		case "o", "opium":
			return types.Opium
		case "s", "silk":
			return types.Silk
		case "a", "arms":
			return types.Arms
		case "g", "general":
			return types.General
		}
	}
}

func (b *bridge) AskAmount(prompt string, max int) int {
	for {
		input := strings.ToLower(b.prompt(fmt.Sprintf(
			"%s (max %s, or 'all')", prompt, humanize.Comma(int64(max)))))
		if input == "a" || input == "all" {
			return types.AllAmount
		}
		if input == "" {
			return 0
		}
		n, err := strconv.Atoi(input)
		if err == nil && n >= 0 {
			return n
		}
	}
}

func (b *bridge) AskYesNo(prompt string) bool {
	for {
		switch strings.ToLower(b.prompt(prompt + " (y/n)")) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

func (b *bridge) AskDestination(s *types.GameState) types.Port {
	var sb strings.Builder
	sb.WriteString("Destinations:")
	for i, p := range types.Ports {
		fmt.Fprintf(&sb, " %d) %s", i+1, types.PortNames[p])
	}
	b.prog.Send(lineMsg{text: sb.String()})
	for {
		n, err := strconv.Atoi(b.prompt("Where to, Taipan?"))
		if err == nil && n >= 1 && n <= len(types.Ports) {
			return types.Ports[n-1]
		}
	}
}

func (b *bridge) AskBattleOrder(s *types.GameState, numShips int) types.Order {
	for {
		input := strings.ToLower(b.prompt(fmt.Sprintf(
			"%d ships, %d guns, %d%% damage. (F)ight, (R)un, or (T)hrow cargo?",
			numShips, s.Guns, s.Damage)))
		switch input {
		case "f", "fight":
			return types.OrderFight
		case "r", "run":
			return types.OrderRun
		case "t", "throw":
			return types.OrderThrowCargo
		}
	}
}
