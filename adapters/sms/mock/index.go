package mock

import (
	"context"
	"sync"

	"github.com/supernova0730/mbsms/adapters/logger"
	"github.com/supernova0730/mbsms/adapters/sms"
	"github.com/supernova0730/mbsms/mbErrs"
)

type St struct {
	lg      logger.Lite
	testing bool

	q  []*sms.MessageSt
	mu sync.Mutex

	credits string
	rep     *sms.RepSt
	err     error
}

func New(lg logger.Lite, testing bool) *St {
	return &St{
		lg:      lg,
		testing: testing,
		q:       make([]*sms.MessageSt, 0),
		credits: "0",
	}
}

// SetRep overrides the response of the following sends. A nil rep means success.
func (m *St) SetRep(rep *sms.RepSt, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rep = rep
	m.err = err
}

func (m *St) SetCredits(v string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.credits = v
}

func (m *St) Send(ctx context.Context, msg *sms.MessageSt) (*sms.RepSt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if msg == nil || len(msg.Destinations) == 0 {
		return nil, mbErrs.WithDesc(mbErrs.InvalidArgument, "at least one destination is required")
	}

	if !m.testing {
		m.lg.Infow("Sms sent", "destinations", msg.Destinations, "msg", msg.Body)
	}

	if len(m.q) > 100 {
		m.q = make([]*sms.MessageSt, 0)
	}

	m.q = append(m.q, msg)

	if m.err != nil {
		return m.rep, m.err
	}

	if m.rep != nil {
		rep := *m.rep
		return &rep, nil
	}

	return &sms.RepSt{
		Code:    sms.CodeOk,
		Message: "OK",
	}, nil
}

func (m *St) Balance(ctx context.Context) (*sms.RepSt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &sms.RepSt{Credits: m.credits, HasCredits: true}, nil
}

func (m *St) PullAll() []*sms.MessageSt {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := m.q

	m.q = make([]*sms.MessageSt, 0)

	return q
}

func (m *St) Clean() {
	_ = m.PullAll()

	m.SetRep(nil, nil)
}
