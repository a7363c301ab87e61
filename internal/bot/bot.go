package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/EgorLis/euphbot/internal/euclient"
)

const DefaultPing = "Pong!"

// Config — настройки бота, неизменны всё время его жизни.
type Config struct {
	ShortHelp    string // ответ на "!help" (пусто — без ответа)
	LongHelp     string // ответ на "!help @Nick"
	GenericPing  string // ответ на "!ping", по умолчанию "Pong!"
	SpecificPing string // ответ на "!ping @Nick", по умолчанию "Pong!"
	Rules        []Rule

	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.GenericPing == "" {
		c.GenericPing = DefaultPing
	}
	if c.SpecificPing == "" {
		c.SpecificPing = DefaultPing
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

type Bot struct {
	sess *euclient.Session
	cfg  Config
	log  *slog.Logger

	commands []command
	wake     command // то, что слушаем на паузе

	killed bool
}

// New собирает бота поверх уже открытой сессии.
func New(sess *euclient.Session, cfg Config) *Bot {
	cfg = cfg.withDefaults()
	b := &Bot{
		sess: sess,
		cfg:  cfg,
		log:  cfg.Logger.With("room", sess.Room(), "nick", sess.Nick()),
	}
	b.commands, b.wake = builtins(sess.Nick())
	return b
}

// Connect подключается к комнате и возвращает готового бота.
func Connect(ctx context.Context, conn euclient.Config, cfg Config) (*Bot, error) {
	if conn.Logger == nil {
		conn.Logger = cfg.Logger
	}
	sess, err := euclient.Connect(ctx, conn)
	if err != nil {
		return nil, err
	}
	return New(sess, cfg), nil
}

func (b *Bot) Session() *euclient.Session { return b.sess }

// Killed — закрыт ли бот командой !kill.
func (b *Bot) Killed() bool { return b.killed }

func (b *Bot) Post(message, parent string) error {
	return b.sess.Post(message, parent)
}

func (b *Bot) Close() error {
	return b.sess.Close()
}

// Receive читает один пакет и обрабатывает его. Битые кадры логируются и
// пропускаются. Ошибка означает потерю соединения: сессия уже закрыта,
// решать переподключаться или выходить — вызывающему.
func (b *Bot) Receive() error {
	p, err := b.sess.ReadPacket()
	if err != nil {
		if errors.Is(err, euclient.ErrProtocol) {
			b.log.Warn("dropping malformed frame", "err", err)
			return nil
		}
		return err
	}
	return b.dispatch(p)
}

func (b *Bot) dispatch(p *euclient.Packet) error {
	switch p.Type {
	case euclient.TypePingEvent:
		var ev euclient.PingEvent
		if err := p.Decode(&ev); err != nil {
			b.log.Warn("dropping malformed frame", "err", err)
			return nil
		}
		return b.sess.PingReply(ev.Time)

	case euclient.TypeSendReply:
		if p.Error != "" {
			b.log.Warn("send rejected", "err", p.Error)
		}
		b.sess.RecordReply(p)
		return nil

	case euclient.TypeSendEvent:
		var msg euclient.Message
		if err := p.Decode(&msg); err != nil {
			b.log.Warn("dropping malformed frame", "err", err)
			return nil
		}
		return b.handleMessage(p, &msg)

	default:
		return nil
	}
}

func (b *Bot) handleMessage(p *euclient.Packet, msg *euclient.Message) error {
	if b.sess.Paused() && !b.wake.re.MatchString(msg.Content) {
		b.trigger(msg)
		return b.reply(msg.ID,
			"/me is paused.",
			`Type "!restore `+Mention(b.sess.Nick())+`" to restore me or "!kill `+
				Mention(b.sess.Nick())+`" to kill me.`)
	}

	for _, c := range b.commands {
		if !c.re.MatchString(msg.Content) {
			continue
		}
		b.trigger(msg)
		if err := c.run(b, msg); err != nil {
			return err
		}
		break
	}
	if b.killed {
		return nil
	}

	return b.runRules(p, msg)
}

func (b *Bot) reply(parent string, messages ...string) error {
	for _, m := range messages {
		if err := b.sess.Post(m, parent); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) trigger(msg *euclient.Message) {
	b.log.Info("received trigger message", "content", msg.Content, "sender", msg.Sender.Name)
}

// Mention — как ник выглядит в упоминании: "@" и без пробелов.
func Mention(nick string) string {
	return "@" + strings.ReplaceAll(nick, " ", "")
}
