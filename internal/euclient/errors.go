package euclient

import "errors"

var (
	ErrConnection       = errors.New("euphoria: connection failed")
	ErrConnectionClosed = errors.New("euphoria: connection closed")
	ErrProtocol         = errors.New("euphoria: protocol error")
)
