package bot

import (
	"context"
	"log/slog"
	"time"
)

const (
	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

// Runner крутит цикл Receive и решает, что делать при обрыве:
// переподключиться (Reconnect) или завершиться.
type Runner struct {
	Dial      func(ctx context.Context) (*Bot, error)
	OnConnect func(b *Bot) error // вызывается после каждого (пере)подключения
	Reconnect bool

	MinBackoff time.Duration
	MaxBackoff time.Duration
	Logger     *slog.Logger
}

// Run возвращает nil после !kill или отмены ctx, иначе — ошибку соединения.
func (r *Runner) Run(ctx context.Context) error {
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}
	lo, hi := r.MinBackoff, r.MaxBackoff
	if lo <= 0 {
		lo = minBackoff
	}
	if hi < lo {
		hi = max(maxBackoff, lo)
	}
	backoff := lo

	for {
		b, err := r.Dial(ctx)
		if err == nil {
			backoff = lo
			err = r.serve(ctx, b)
			if b.Killed() || ctx.Err() != nil {
				return nil
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		if !r.Reconnect {
			return err
		}

		log.Warn("connection lost, reconnecting", "err", err, "wait", backoff)
		if !sleep(ctx, backoff) {
			return nil
		}
		backoff = min(backoff*2, hi)
	}
}

func (r *Runner) serve(ctx context.Context, b *Bot) error {
	stop := context.AfterFunc(ctx, func() { _ = b.Close() })
	defer stop()
	defer b.Close()

	if r.OnConnect != nil {
		if err := r.OnConnect(b); err != nil {
			return err
		}
	}
	for {
		if err := b.Receive(); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

