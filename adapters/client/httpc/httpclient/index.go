package httpclient

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/supernova0730/mbsms/adapters/client/httpc"
	"github.com/supernova0730/mbsms/adapters/logger"
	"github.com/supernova0730/mbsms/mbErrs"
)

const DefaultTimeout = 30 * time.Second

type St struct {
	lg   logger.Lite
	opts httpc.OptionsSt
}

func New(lg logger.Lite, opts httpc.OptionsSt) *St {
	if opts.BaseUrl != "" {
		opts.BaseUrl = strings.TrimRight(opts.BaseUrl, "/") + "/"
	}

	if opts.Client == nil {
		opts.Client = &http.Client{}
	}

	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	return &St{
		lg:   lg,
		opts: opts,
	}
}

func (c *St) GetOptions() httpc.OptionsSt {
	return c.opts
}

func (c *St) Send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	opts = c.opts.GetMergedWith(opts)

	origLogFlags := opts.LogFlags

	var err error
	var repBody []byte

	for i := opts.RetryCount; i >= 0; i-- {
		if i == 0 {
			opts.LogFlags = origLogFlags
		} else {
			opts.LogFlags = origLogFlags | httpc.NoLogError
		}

		repBody, err = c.send(ctx, reqBody, opts)
		if err != nil {
			if i > 0 && opts.RetryInterval > 0 {
				select {
				case <-ctx.Done():
					return nil, mbErrs.WithDesc(mbErrs.TransportFailure, ctx.Err().Error())
				case <-time.After(opts.RetryInterval):
				}
			}
			continue
		}

		return repBody, nil
	}

	return nil, err
}

func (c *St) send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	var err error

	uri := opts.BaseUrl + opts.Path

	logError := opts.LogFlags&httpc.NoLogError <= 0

	if opts.LogFlags&httpc.LogRequest > 0 {
		c.lg.Infow(opts.BaseLogPrefix+opts.LogPrefix+"request: /"+opts.Path,
			"uri", uri,
			"body", string(reqBody),
		)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, uri, bytes.NewReader(reqBody))
	if err != nil {
		if logError {
			c.lg.Errorw(opts.BaseLogPrefix+opts.LogPrefix+"Fail to create http-request", err)
		}
		return nil, mbErrs.WithDesc(mbErrs.TransportFailure, err.Error())
	}

	// Headers
	for k, v := range opts.BaseHeaders {
		req.Header[k] = v
	}
	for k, v := range opts.Headers {
		req.Header[k] = v
	}

	// Query params
	var queryParamsString string
	if len(opts.BaseParams) > 0 || len(opts.Params) > 0 {
		qPars := req.URL.Query()
		for k, v := range opts.BaseParams {
			qPars[k] = v
		}
		for k, v := range opts.Params {
			qPars[k] = v
		}
		queryParamsString = qPars.Encode()
		req.URL.RawQuery = queryParamsString
	}

	// Basic auth
	if opts.BasicAuthCreds != nil {
		req.SetBasicAuth(opts.BasicAuthCreds.Username, opts.BasicAuthCreds.Password)
	}

	// sends "Connection: close"
	req.Close = opts.CloseConn

	// Do request
	rep, err := opts.Client.Do(req)
	if err != nil {
		if logError {
			c.lg.Errorw(
				opts.BaseLogPrefix+opts.LogPrefix+"Fail to send http-request", err,
				"uri", uri,
				"params", queryParamsString,
			)
		}
		return nil, mbErrs.WithDesc(mbErrs.TransportFailure, err.Error())
	}
	defer rep.Body.Close()

	// read response body
	repBody, err := io.ReadAll(rep.Body)
	if err != nil {
		if logError {
			c.lg.Errorw(
				opts.BaseLogPrefix+opts.LogPrefix+"Fail to read body", err,
				"uri", uri,
				"params", queryParamsString,
			)
		}
		return nil, mbErrs.WithDesc(mbErrs.TransportFailure, err.Error())
	}

	if rep.StatusCode < 200 || rep.StatusCode > 299 {
		if rep.StatusCode == http.StatusUnauthorized || rep.StatusCode == http.StatusForbidden {
			if logError && opts.LogFlags&httpc.NoLogNotAuthorized <= 0 {
				c.lg.Errorw(
					opts.BaseLogPrefix+opts.LogPrefix+"Bad status code", nil,
					"status_code", rep.StatusCode,
					"rep_body", string(repBody),
					"uri", uri,
				)
			}
			return nil, mbErrs.NotAuthorized
		}
		if logError && opts.LogFlags&httpc.NoLogBadStatus <= 0 {
			c.lg.Errorw(
				opts.BaseLogPrefix+opts.LogPrefix+"Bad status code", nil,
				"status_code", rep.StatusCode,
				"rep_body", string(repBody),
				"uri", uri,
			)
		}
		return nil, mbErrs.WithDesc(mbErrs.BadStatusCode, rep.Status)
	}

	if opts.LogFlags&httpc.LogResponse > 0 {
		c.lg.Infow(opts.BaseLogPrefix+opts.LogPrefix+"response: /"+opts.Path,
			"uri", uri,
			"body", string(repBody),
		)
	}

	return repBody, nil
}

func (c *St) SendForm(ctx context.Context, form httpc.Form, opts httpc.OptionsSt) ([]byte, error) {
	opts.Headers = opts.Headers.Clone()
	if opts.Headers == nil {
		opts.Headers = http.Header{}
	}

	opts.Headers["Content-Type"] = []string{httpc.ContentTypeForm}

	// the raw body carries credentials, so the request is logged masked here
	if logFlags := c.opts.GetMergedWith(opts).LogFlags; logFlags&httpc.LogRequest > 0 {
		c.lg.Infow(c.opts.BaseLogPrefix+opts.LogPrefix+"request: /"+opts.Path,
			"form", form.Masked(httpc.SecretFormFields...).Encode(),
		)
		opts.LogFlags = logFlags &^ httpc.LogRequest
		if opts.LogFlags == 0 {
			opts.LogFlags = -1
		}
	}

	return c.Send(ctx, []byte(form.Encode()), opts)
}

func (c *St) SendFormRecvXml(ctx context.Context, form httpc.Form, repObj any, opts httpc.OptionsSt) ([]byte, error) {
	opts.Headers = opts.Headers.Clone()
	if opts.Headers == nil {
		opts.Headers = http.Header{}
	}

	opts.Headers["Accept"] = []string{httpc.ContentTypeXml}

	repBody, err := c.SendForm(ctx, form, opts)
	if err != nil {
		return nil, err
	}

	if repObj != nil {
		err = DecodeXml(repBody, repObj)
		if err != nil {
			if opts.LogFlags&httpc.NoLogError <= 0 {
				c.lg.Errorw(
					opts.LogPrefix+"Fail to unmarshal body", err,
					"path", opts.Path,
					"rep_body", string(repBody),
				)
			}
			return repBody, err
		}
	}

	return repBody, nil
}

// DecodeXml unmarshals body into repObj. Empty or malformed documents
// are reported as mbErrs.ResponseParseError.
func DecodeXml(body []byte, repObj any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return mbErrs.WithDesc(mbErrs.ResponseParseError, "empty body")
	}

	if err := xml.Unmarshal(body, repObj); err != nil {
		return mbErrs.WithDesc(mbErrs.ResponseParseError, err.Error())
	}

	return nil
}
