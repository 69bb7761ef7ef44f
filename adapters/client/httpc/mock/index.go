package mock

import (
	"context"
	"net/http"
	"sync"

	"github.com/supernova0730/mbsms/adapters/client/httpc"
	"github.com/supernova0730/mbsms/adapters/client/httpc/httpclient"
	"github.com/supernova0730/mbsms/adapters/logger"
	"github.com/supernova0730/mbsms/mbErrs"
)

const (
	ErrPageNotFound = mbErrs.Err("page_not_found")
)

type St struct {
	lg logger.Lite

	requests  []*RequestSt
	responses map[string]ResponseSt
	mu        sync.Mutex
}

type RequestSt struct {
	Opts httpc.OptionsSt
	Form httpc.Form
	Raw  []byte
}

// ResponseSt is returned for a path. Err, when set, is returned instead of Raw.
type ResponseSt struct {
	Raw []byte
	Err error
}

func New(lg logger.Lite) *St {
	return &St{
		lg: lg,

		requests:  []*RequestSt{},
		responses: map[string]ResponseSt{},
	}
}

func (c *St) SetResponses(responses map[string]ResponseSt) {
	c.mu.Lock()
	c.responses = map[string]ResponseSt{}
	c.mu.Unlock()

	for k, v := range responses {
		c.SetResponse(k, v)
	}
}

func (c *St) SetResponse(path string, response ResponseSt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responses[path] = response
}

func (c *St) SetRawResponse(path string, raw string) {
	c.SetResponse(path, ResponseSt{Raw: []byte(raw)})
}

func (c *St) GetOptions() httpc.OptionsSt {
	return httpc.OptionsSt{}
}

func (c *St) Send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	return c.send(ctx, nil, reqBody, opts)
}

func (c *St) send(ctx context.Context, form httpc.Form, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, &RequestSt{
		Opts: opts,
		Form: form,
		Raw:  reqBody,
	})

	if err := ctx.Err(); err != nil {
		return nil, mbErrs.WithDesc(mbErrs.TransportFailure, err.Error())
	}

	response, ok := c.responses[opts.Path]
	if !ok {
		c.lg.Infow("Httpc-mock, path not found", "path", opts.Path)
		return nil, ErrPageNotFound
	}

	if response.Err != nil {
		return nil, response.Err
	}

	return response.Raw, nil
}

func (c *St) SendForm(ctx context.Context, form httpc.Form, opts httpc.OptionsSt) ([]byte, error) {
	opts.Headers = opts.Headers.Clone()
	if opts.Headers == nil {
		opts.Headers = http.Header{}
	}

	opts.Headers["Content-Type"] = []string{httpc.ContentTypeForm}

	return c.send(ctx, form, []byte(form.Encode()), opts)
}

func (c *St) SendFormRecvXml(ctx context.Context, form httpc.Form, repObj any, opts httpc.OptionsSt) ([]byte, error) {
	repBody, err := c.SendForm(ctx, form, opts)
	if err != nil {
		return nil, err
	}

	if repObj != nil {
		if err = httpclient.DecodeXml(repBody, repObj); err != nil {
			return repBody, err
		}
	}

	return repBody, nil
}

func (c *St) GetRequests() []*RequestSt {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*RequestSt, len(c.requests))
	copy(result, c.requests)

	return result
}

// GetRequest returns the first request sent to path.
func (c *St) GetRequest(path string) (*RequestSt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, req := range c.requests {
		if req.Opts.Path == path {
			return req, true
		}
	}

	return nil, false
}

func (c *St) LastRequest() (*RequestSt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.requests) == 0 {
		return nil, false
	}

	return c.requests[len(c.requests)-1], true
}

func (c *St) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = []*RequestSt{}
	c.responses = map[string]ResponseSt{}
}
