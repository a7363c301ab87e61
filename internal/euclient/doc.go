// Package euclient реализует сессию WebSocket-клиента Euphoria (euphoria.io).
// Сессия подключается к комнате (wss://<host>/room/<room>/ws), сразу
// представляется ником (пакет "nick"), умеет отправлять сообщения ("send"),
// отвечать на ping-event и читать входящие пакеты по одному.
//
// Клиент синхронный: фоновых горутин нет, единственная точка блокировки —
// ReadPacket. Отменить чтение можно только закрыв сессию (Close), после чего
// ReadPacket и Post возвращают ErrConnectionClosed.
//
// Ошибки:
//   - ErrConnection — не удалось установить соединение;
//   - ErrConnectionClosed — соединение упало или уже закрыто;
//   - ErrProtocol — пакет не кодируется/не декодируется.
//
// Пример:
//
//	s, err := euclient.Connect(ctx, euclient.Config{Room: "test", Nick: "bot"})
//	if err != nil { log.Fatal(err) }
//	defer s.Close()
//
//	_ = s.Post("hello", "")
//	p, err := s.ReadPacket()
package euclient
