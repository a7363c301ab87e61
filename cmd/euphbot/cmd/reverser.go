package cmd

import (
	"context"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EgorLis/euphbot/internal/bot"
)

const reverserLongHelp = `I reverse things on command.

    !reverse <string> - reverses the <string>
    !reversewords <string> - reverses the order of words in <string>`

var reverserCmd = &cobra.Command{
	Use:   "reverser",
	Short: "Bot that reverses text (!reverse, !reversewords)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := bot.FileConfig{
			Room:         "xkcd",
			Nick:         "Reverser",
			ShortHelp:    "I reverse things.",
			LongHelp:     reverserLongHelp,
			GenericPing:  "Pong!",
			SpecificPing: "Pong!",
		}
		return runBot(cmd, defaults, func(context.Context) []bot.Rule { return reverserRules() }, nil)
	},
}

func reverserRules() []bot.Rule {
	return []bot.Rule{
		bot.MustRule(`(?i)^\s*!reverse\s+(.*)`, bot.Text(func(g []string) string { return reverse(g[0]) })),
		bot.MustRule(`(?i)^\s*!reversewords\s+(.*)`, bot.Text(func(g []string) string { return reverseWords(g[0]) })),
	}
}

func reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}

func reverseWords(s string) string {
	w := strings.Fields(s)
	slices.Reverse(w)
	return strings.Join(w, " ")
}
