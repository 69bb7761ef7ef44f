package httpclient

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/supernova0730/mbsms/adapters/client/httpc"
	"github.com/supernova0730/mbsms/adapters/logger/zap"
	"github.com/supernova0730/mbsms/mbErrs"
)

type testRepSt struct {
	XMLName xml.Name `xml:"response"`
	Item    struct {
		ResponseCode string `xml:"responseCode"`
	} `xml:"item"`
}

func newTestClient(url string, opts httpc.OptionsSt) *St {
	opts.BaseUrl = url
	opts.Method = http.MethodPost
	return New(zap.NewNop(), opts)
}

func TestSendFormRequestShape(t *testing.T) {
	var gotReq *http.Request
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`<?xml version="1.0"?><response><item><responseCode>01</responseCode></item></response>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, httpc.OptionsSt{CloseConn: true, LogFlags: httpc.LogRequest | httpc.LogResponse})

	form := httpc.Form{{Key: "username", Value: "user"}, {Key: "password", Value: "p&ss"}, {Key: "body", Value: "hi there"}}

	rep := testRepSt{}
	_, err := c.SendFormRecvXml(context.Background(), form, &rep, httpc.OptionsSt{Path: "api/sms"})
	require.NoError(t, err)
	require.Equal(t, "01", rep.Item.ResponseCode)

	require.Equal(t, http.MethodPost, gotReq.Method)
	require.Equal(t, "/api/sms", gotReq.URL.Path)
	require.Equal(t, httpc.ContentTypeForm, gotReq.Header.Get("Content-Type"))
	require.Equal(t, int64(len(gotBody)), gotReq.ContentLength)
	require.True(t, gotReq.Close)
	require.Equal(t, "username=user&password=p%26ss&body=hi+there", string(gotBody))
}

func TestSendFormKeepsCallerHeaders(t *testing.T) {
	var gotHeader http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		_, _ = w.Write([]byte(`<response><item><responseCode>01</responseCode></item></response>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, httpc.OptionsSt{})

	headers := http.Header{"X-Trace": {"abc"}}
	opts := httpc.OptionsSt{Path: "api/sms", Headers: headers}

	_, err := c.SendFormRecvXml(context.Background(), httpc.Form{{Key: "body", Value: "hi"}}, &testRepSt{}, opts)
	require.NoError(t, err)

	_, err = c.SendForm(context.Background(), httpc.Form{{Key: "body", Value: "hi"}}, opts)
	require.NoError(t, err)

	require.Equal(t, http.Header{"X-Trace": {"abc"}}, headers)
	require.Equal(t, "abc", gotHeader.Get("X-Trace"))
	require.Equal(t, httpc.ContentTypeForm, gotHeader.Get("Content-Type"))
}

func TestSendBadStatus(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusInternalServerError, wantErr: mbErrs.BadStatusCode},
		{status: http.StatusNotFound, wantErr: mbErrs.BadStatusCode},
		{status: http.StatusUnauthorized, wantErr: mbErrs.NotAuthorized},
		{status: http.StatusForbidden, wantErr: mbErrs.NotAuthorized},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := newTestClient(srv.URL, httpc.OptionsSt{})

			_, err := c.Send(context.Background(), nil, httpc.OptionsSt{Path: "api/credits"})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSendRetry(t *testing.T) {
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, httpc.OptionsSt{})

	rep, err := c.Send(context.Background(), nil, httpc.OptionsSt{
		Path:          "x",
		RetryCount:    2,
		RetryInterval: time.Millisecond,
	})
	require.NoError(t, err)
	require.Equal(t, "ok", string(rep))
	require.Equal(t, 3, calls)
}

func TestSendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(url, httpc.OptionsSt{})

	_, err := c.Send(context.Background(), nil, httpc.OptionsSt{Path: "api/sms"})
	require.ErrorIs(t, err, mbErrs.TransportFailure)
}

func TestSendTimeout(t *testing.T) {
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(srv.URL, httpc.OptionsSt{Timeout: 50 * time.Millisecond})

	_, err := c.Send(context.Background(), nil, httpc.OptionsSt{Path: "api/sms"})
	require.ErrorIs(t, err, mbErrs.TransportFailure)
}

func TestDecodeXml(t *testing.T) {
	tests := []struct {
		body    string
		wantErr bool
	}{
		{body: `<response><item><responseCode>01</responseCode></item></response>`},
		{body: ``, wantErr: true},
		{body: `   `, wantErr: true},
		{body: `<response><item>`, wantErr: true},
		{body: `not xml at all`, wantErr: true},
		{body: `<other><item/></other>`, wantErr: true},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i+1), func(t *testing.T) {
			rep := testRepSt{}
			err := DecodeXml([]byte(tt.body), &rep)
			if tt.wantErr {
				require.True(t, errors.Is(err, mbErrs.ResponseParseError), "err = %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}
