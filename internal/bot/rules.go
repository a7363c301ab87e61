package bot

import (
	"fmt"
	"regexp"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/EgorLis/euphbot/internal/euclient"
)

// Handler получает группы совпадения (без полного совпадения) и сырой data
// пакета send-event. Пустые строки в ответе не отправляются.
type Handler func(groups []string, data *structpb.Struct) ([]string, error)

// Rule — пользовательское правило: регулярка + обработчик.
type Rule struct {
	Pattern *regexp.Regexp
	Handler Handler
}

func NewRule(pattern string, h Handler) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", pattern, err)
	}
	return Rule{Pattern: re, Handler: h}, nil
}

func MustRule(pattern string, h Handler) Rule {
	r, err := NewRule(pattern, h)
	if err != nil {
		panic(err)
	}
	return r
}

// Text — обработчик с одним ответом, которому не нужен data.
func Text(f func(groups []string) string) Handler {
	return func(groups []string, _ *structpb.Struct) ([]string, error) {
		return []string{f(groups)}, nil
	}
}

// HandlerError — обработчик правила вернул ошибку или запаниковал.
type HandlerError struct {
	Pattern string
	Err     error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("rule %q: %v", e.Pattern, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }

func (r Rule) call(groups []string, data *structpb.Struct) (replies []string, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("panic: %v", v)
		}
	}()
	return r.Handler(groups, data)
}

// runRules прогоняет все правила по порядку; сработать могут несколько.
// Ошибка обработчика изолирована, ошибка отправки — нет.
func (b *Bot) runRules(p *euclient.Packet, msg *euclient.Message) error {
	var data *structpb.Struct
	for _, r := range b.cfg.Rules {
		m := r.Pattern.FindStringSubmatch(msg.Content)
		if m == nil {
			continue
		}
		b.trigger(msg)

		if data == nil {
			st, err := p.Struct()
			if err != nil {
				b.log.Warn("raw payload unavailable for rules", "err", err)
				st = &structpb.Struct{}
			}
			data = st
		}

		replies, err := r.call(m[1:], data)
		if err != nil {
			b.log.Error("rule handler failed", "err", &HandlerError{Pattern: r.Pattern.String(), Err: err})
			continue
		}
		if err := b.reply(msg.ID, replies...); err != nil {
			return err
		}
	}
	return nil
}
