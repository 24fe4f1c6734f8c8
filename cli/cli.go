// Package cli provides the line-oriented terminal interface. It
// implements the engine's UI contract with plain prompts on stdin and
// stdout, suitable for dumb terminals and scripted playback.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

// New creates a CLI on stdin/stdout.
func New() *CLI {
	return &CLI{In: os.Stdin, Out: os.Stdout}
}

func (c *CLI) readLine() string {
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

func (c *CLI) print(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// ReportMessage prints one line of narration.
func (c *CLI) ReportMessage(text string) {
	c.print("%s\n", text)
}

// AskFirmName prompts for the firm's name, defaulting when empty.
func (c *CLI) AskFirmName() string {
	c.print("What will you name your firm, Taipan? ")
	name := c.readLine()
	if name == "" {
		name = "Taipan"
	}
	return name
}

// AskStartChoice prompts for the starting bundle.
func (c *CLI) AskStartChoice() types.StartChoice {
	c.print("Do you want to start with cash (and a debt) or five guns and no cash?\n")
	for {
		c.print("  (c) or (g): ")
		switch strings.ToLower(c.readLine()) {
		case "c", "cash":
			return types.CashStart
		case "g", "guns":
			return types.GunsStart
		}
	}
}

// AskPortAction prints the status block and the port menu, then reads
// a choice. Unknown input reprompts.
func (c *CLI) AskPortAction(s *types.GameState) types.PortAction {
	c.printStatus(s)

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

	for {
		c.print("Shall I (B)uy, (S)ell, visit the ban(K), go to the (W)harf,\n")
		c.print("(V)isit Elder Brother Wu, set sail for (T)ravel, s(A)ve,\n")
		c.print("(Q)uit trading, or (R)etire? ")
		if action, ok := actions[strings.ToLower(c.readLine())]; ok {
			return action
		}
	}
}

// printStatus shows the trading screen: date, port, money, ship and
// the price list.
func (c *CLI) printStatus(s *types.GameState) {
	c.print("\n%s, %s of %d %d\n", s.Firm, monthName(s.Month), s.Month, s.Year)
	c.print("Port: %s   Cash: %s   Bank: %s   Debt: %s\n",
		types.PortNames[s.Location],
		humanize.Comma(int64(s.Cash)),
		humanize.Comma(int64(s.Bank)),
		humanize.Comma(int64(s.Debt)))
	c.print("Ship: hold %d (%d free), %d guns, %d%% damage\n",
		s.Capacity, s.CargoSpace, s.Guns, s.Damage)
	c.print("Status: %d%%\n", state.HullStatus(s))

	c.print("Prices:   ")
	for _, com := range types.Commodities {
		c.print("%s %s   ", types.CommodityNames[com], humanize.Comma(int64(s.Prices[com])))
	}
	c.print("\nHold:     ")
	for _, com := range types.Commodities {
		c.print("%s %d   ", types.CommodityNames[com], s.Inventory[com])
	}
	if s.Location == types.HomePort {
		c.print("\nWarehouse: ")
		for _, com := range types.Commodities {
			c.print("%s %d   ", types.CommodityNames[com], s.Warehouse[com])
		}
	}
	c.print("\n\n")
}

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func monthName(m int) string {
	if m >= 1 && m <= 12 {
		return monthNames[m-1]
	}
	return strconv.Itoa(m)
}

// AskCommodity picks a commodity by initial letter.
func (c *CLI) AskCommodity(prompt string) types.Commodity {
	for {
		c.print("%s (O)pium, (S)ilk, (A)rms, or (G)eneral cargo: ", prompt)
		switch strings.ToLower(c.readLine()) {
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

// AskAmount reads a non-negative quantity; "a" or "all" returns the
// sentinel for the engine to resolve.
func (c *CLI) AskAmount(prompt string, max int) int {
	for {
		c.print("%s (max %s, or 'all'): ", prompt, humanize.Comma(int64(max)))
		input := strings.ToLower(c.readLine())
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

// AskYesNo reads a yes/no answer, reprompting on anything else.
func (c *CLI) AskYesNo(prompt string) bool {
	for {
		c.print("%s (y/n): ", prompt)
		switch strings.ToLower(c.readLine()) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

// AskDestination shows the port list and reads a destination.
func (c *CLI) AskDestination(s *types.GameState) types.Port {
	c.print("Destinations, Taipan:\n")
	for i, p := range types.Ports {
		c.print("  %d) %s\n", i+1, types.PortNames[p])
	}
	for {
		c.print("Where to? ")
		n, err := strconv.Atoi(c.readLine())
		if err == nil && n >= 1 && n <= len(types.Ports) {
			return types.Ports[n-1]
		}
	}
}

// AskBattleOrder reads a combat order.
func (c *CLI) AskBattleOrder(s *types.GameState, numShips int) types.Order {
	c.print("%d ships attacking, Taipan! Guns: %d  Damage: %d%%\n",
		numShips, s.Guns, s.Damage)
	for {
		c.print("Shall we (F)ight, (R)un, or (T)hrow cargo? ")
		switch strings.ToLower(c.readLine()) {
		case "f", "fight":
			return types.OrderFight
		case "r", "run":
			return types.OrderRun
		case "t", "throw":
			return types.OrderThrowCargo
		}
	}
}
