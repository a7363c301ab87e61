// Package bot — бот для комнаты Euphoria поверх euclient.Session.
// Бот читает пакеты по одному (Receive) и:
//   - отвечает на ping-event;
//   - запоминает последний send-reply;
//   - на send-event прогоняет встроенные команды (botrulez: !ping, !help,
//     !uptime, !pause, !restore/!unpause, !kill), затем все пользовательские
//     правила (Rule) по порядку.
//
// Цикл чтения ведёт вызывающий код. Runner — готовый цикл с политикой
// переподключения (экспоненциальный backoff) и выходом по !kill.
//
// Пример:
//
//	rules := []bot.Rule{
//	    bot.MustRule(`(?i)^\s*!echo\s+(.*)`, bot.Text(func(g []string) string { return g[0] })),
//	}
//	b, err := bot.Connect(ctx, euclient.Config{Room: "test", Nick: "Echo"},
//	    bot.Config{ShortHelp: "I echo things.", Rules: rules})
//	if err != nil { log.Fatal(err) }
//	defer b.Close()
//
//	for {
//	    if err := b.Receive(); err != nil {
//	        break // соединение закрыто
//	    }
//	}
package bot
