package cmd

import (
	"github.com/spf13/cobra"

	"github.com/EgorLis/euphbot/internal/bot"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Minimal bot: standard commands only, says hello after joining",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults := bot.FileConfig{
			Room:         "test",
			Nick:         "nick",
			ShortHelp:    "This is a short help message.",
			LongHelp:     "This is a not very long help message.",
			GenericPing:  "This is a generic ping reply.",
			SpecificPing: "This is a specific ping reply.",
		}
		return runBot(cmd, defaults, nil, greet("message"))
	},
}

// greet дожидается первого пакета от сервера и пишет text в комнату.
// Только при первом подключении: после переподключения молчит.
func greet(text string) func(*bot.Bot) error {
	var done bool
	return func(b *bot.Bot) error {
		if done {
			return nil
		}
		if err := b.Receive(); err != nil {
			return err
		}
		if err := b.Post(text, ""); err != nil {
			return err
		}
		done = true
		return nil
	}
}
