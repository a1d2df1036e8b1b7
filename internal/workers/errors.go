package workers

import "errors"

var (
	ErrQueueFull        = errors.New("mail queue is full")
	ErrQueueClosed      = errors.New("mail queue is closed")
	ErrUnknownQueue     = errors.New("unknown mail queue kind")
	ErrUnknownMailKind  = errors.New("unknown mail kind")
	ErrRenderingMessage = errors.New("error rendering mail message")
)
