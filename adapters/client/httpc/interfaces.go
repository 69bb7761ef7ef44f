package httpc

import (
	"context"
)

type HttpC interface {
	GetOptions() OptionsSt
	Send(ctx context.Context, reqBody []byte, opts OptionsSt) ([]byte, error)
	SendForm(ctx context.Context, form Form, opts OptionsSt) ([]byte, error)
	SendFormRecvXml(ctx context.Context, form Form, repObj any, opts OptionsSt) ([]byte, error)
}
