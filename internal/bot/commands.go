package bot

import (
	"regexp"
	"strings"

	"github.com/EgorLis/euphbot/internal/euclient"
)

type command struct {
	re  *regexp.Regexp
	run func(b *Bot, msg *euclient.Message) error
}

// nickPattern матчит ник как есть или без пробелов (как в упоминании).
func nickPattern(nick string) string {
	full := regexp.QuoteMeta(nick)
	compact := regexp.QuoteMeta(strings.ReplaceAll(nick, " ", ""))
	if full == compact {
		return full
	}
	return "(?:" + full + "|" + compact + ")"
}

func bare(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*!` + name + `\s*$`)
}

func addressed(name, nick string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*!` + name + `\s+@?` + nickPattern(nick) + `\s*$`)
}

// builtins — встроенные команды в порядке проверки и команда «пробуждения»,
// которая работает и на паузе.
func builtins(nick string) ([]command, command) {
	say := func(text func(b *Bot) string) func(*Bot, *euclient.Message) error {
		return func(b *Bot, msg *euclient.Message) error {
			return b.sess.Post(text(b), msg.ID)
		}
	}

	cmds := []command{
		{bare("ping"), say(func(b *Bot) string { return b.cfg.GenericPing })},
		{addressed("ping", nick), say(func(b *Bot) string { return b.cfg.SpecificPing })},
		{bare("help"), say(func(b *Bot) string { return b.cfg.ShortHelp })},
		{addressed("help", nick), say(func(b *Bot) string { return b.cfg.LongHelp })},
		{addressed("uptime", nick), say(func(b *Bot) string { return b.sess.Uptime() })},
		{addressed("pause", nick), func(b *Bot, msg *euclient.Message) error {
			if err := b.sess.Post("/me has been paused.", msg.ID); err != nil {
				return err
			}
			b.sess.SetPaused(true)
			return nil
		}},
		{addressed("(?:unpause|restore)", nick), func(b *Bot, msg *euclient.Message) error {
			if err := b.sess.Post("/me has been restored.", msg.ID); err != nil {
				return err
			}
			b.sess.SetPaused(false)
			return nil
		}},
		{addressed("kill", nick), func(b *Bot, msg *euclient.Message) error {
			b.killed = true
			err := b.sess.Post("/me is now exiting.", msg.ID)
			_ = b.sess.Close()
			return err
		}},
	}

	wake := command{re: addressed("(?:unpause|restore|kill)", nick)}
	return cmds, wake
}
