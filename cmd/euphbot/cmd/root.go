package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath    string
	flagRoom      string
	flagNick      string
	flagHost      string
	flagInsecure  bool
	flagReconnect bool
	flagDebug     bool
	saveConfig    bool
)

var rootCmd = &cobra.Command{
	Use:   "euphbot",
	Short: "Bots for euphoria.io rooms",
	Long: `euphbot runs small bots in euphoria.io chat rooms. Every bot understands the
standard commands (!ping, !help, !uptime, !pause, !restore, !kill) plus its own.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagDebug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute вызывается из main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "JSON config file, created with defaults if missing")
	pf.StringVar(&flagRoom, "room", "", "room to join")
	pf.StringVar(&flagNick, "nick", "", "nick to use")
	pf.StringVar(&flagHost, "host", "", "server host (default euphoria.io)")
	pf.BoolVar(&flagInsecure, "insecure", false, "use ws:// instead of wss://")
	pf.BoolVar(&flagReconnect, "reconnect", false, "reconnect when the connection drops")
	pf.BoolVar(&flagDebug, "debug", false, "debug logging")
	pf.BoolVar(&saveConfig, "save-config", false, "write the merged settings back to --config")

	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(reverserCmd)
	rootCmd.AddCommand(totallyxkcdCmd)
}
