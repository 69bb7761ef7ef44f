package sms

import (
	"context"
)

type Sms interface {
	Send(ctx context.Context, msg *MessageSt) (*RepSt, error)
	Balance(ctx context.Context) (*RepSt, error)
}
