package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/EgorLis/euphbot/internal/bot"
)

// settings: дефолты бота <- конфиг-файл <- флаги. С --save-config итог
// записывается обратно в конфиг-файл.
func settings(cmd *cobra.Command, defaults bot.FileConfig) (bot.FileConfig, error) {
	fc := defaults
	var store *bot.ConfigStore
	if configPath != "" {
		var err error
		store, err = bot.LoadConfigStore(configPath, defaults)
		if err != nil {
			return fc, fmt.Errorf("load config %s: %w", configPath, err)
		}
		fc = store.Data()
	}

	flags := cmd.Flags()
	if flags.Changed("room") {
		fc.Room = flagRoom
	}
	if flags.Changed("nick") {
		fc.Nick = flagNick
	}
	if flags.Changed("host") {
		fc.Host = flagHost
	}
	if flags.Changed("insecure") {
		fc.Insecure = flagInsecure
	}
	if flags.Changed("reconnect") {
		fc.Reconnect = flagReconnect
	}
	if err := fc.Validate(); err != nil {
		return fc, err
	}

	if saveConfig {
		if store == nil {
			return fc, fmt.Errorf("--save-config needs --config")
		}
		store.Update(func(c *bot.FileConfig) { *c = fc })
		if err := store.Save(); err != nil {
			return fc, fmt.Errorf("save config %s: %w", configPath, err)
		}
	}
	return fc, nil
}

// runBot поднимает бота; rules строятся уже на контексте с сигналами,
// чтобы SIGTERM отменял и запросы обработчиков.
func runBot(cmd *cobra.Command, defaults bot.FileConfig, rules func(ctx context.Context) []bot.Rule, onConnect func(*bot.Bot) error) error {
	fc, err := settings(cmd, defaults)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals()...)
	defer stop()

	var rs []bot.Rule
	if rules != nil {
		rs = rules(ctx)
	}

	r := &bot.Runner{
		Dial: func(ctx context.Context) (*bot.Bot, error) {
			return bot.Connect(ctx, fc.Connection(), fc.Bot(rs))
		},
		OnConnect: onConnect,
		Reconnect: fc.Reconnect,
		Logger:    slog.Default(),
	}

	slog.Info("running… press Ctrl+C to stop", "room", fc.Room, "nick", fc.Nick)
	return r.Run(ctx)
}
