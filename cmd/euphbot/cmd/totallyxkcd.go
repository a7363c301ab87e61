package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/EgorLis/euphbot/internal/bot"
	"github.com/EgorLis/euphbot/internal/xkcd"
)

const totallyxkcdLongHelp = `I display xkcd comics on command.

    !totallyxkcd -> the latest xkcd comic
    !totallyxkcd <number> -> the <number>th xkcd comic
    !totallyxkcd random -> a random xkcd comic`

var xkcdBaseURL string

var totallyxkcdCmd = &cobra.Command{
	Use:   "totallyxkcd",
	Short: "Bot that posts xkcd comics (!totallyxkcd [number|random])",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := bot.FileConfig{
			Room:         "xkcd",
			Nick:         "totallyxkcd",
			ShortHelp:    "I display xkcd comics.",
			LongHelp:     totallyxkcdLongHelp,
			GenericPing:  "Pong!",
			SpecificPing: "Pong!",
		}
		client := xkcd.NewClient(xkcdBaseURL)
		rules := func(ctx context.Context) []bot.Rule { return xkcdRules(ctx, client) }
		return runBot(cmd, defaults, rules, nil)
	},
}

func init() {
	totallyxkcdCmd.Flags().StringVar(&xkcdBaseURL, "xkcd-url", xkcd.DefaultBaseURL, "xkcd API base URL")
}

func xkcdRules(ctx context.Context, c *xkcd.Client) []bot.Rule {
	format := func(comic *xkcd.Comic, err error) ([]string, error) {
		if err != nil {
			return nil, err
		}
		return xkcd.Format(comic), nil
	}

	return []bot.Rule{
		bot.MustRule(`(?i)^\s*!totallyxkcd$`, func([]string, *structpb.Struct) ([]string, error) {
			return format(c.Latest(ctx))
		}),
		bot.MustRule(`(?i)^\s*!totallyxkcd\s+(\d+)\s*$`, func(g []string, _ *structpb.Struct) ([]string, error) {
			num, err := strconv.Atoi(g[0])
			if err != nil {
				return nil, err
			}
			return format(c.Get(ctx, num))
		}),
		bot.MustRule(`(?i)^\s*!totallyxkcd\s+random\s*$`, func([]string, *structpb.Struct) ([]string, error) {
			return format(c.Random(ctx))
		}),
	}
}
