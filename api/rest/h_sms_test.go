package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/supernova0730/mbsms/adapters/logger/zap"
	"github.com/supernova0730/mbsms/adapters/sms"
	smsMock "github.com/supernova0730/mbsms/adapters/sms/mock"
	"github.com/supernova0730/mbsms/mbErrs"
	"github.com/supernova0730/mbsms/mbTypes"
)

func newTestHandler() (http.Handler, *smsMock.St) {
	lg := zap.NewNop()
	sm := smsMock.New(lg, true)
	return GetHandler(lg, sm, true), sm
}

func postForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func TestSendOk(t *testing.T) {
	h, sm := newTestHandler()

	w := postForm(h, "/sms", url.Values{
		"destination":  {"+31600000000, 31600000001"},
		"message":      {"This is a test message"},
		"sender":       {"YourSender"},
		"reference":    {"123456789"},
		"replacechars": {"false"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	rep := mbTypes.SmsRep{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	require.Equal(t, sms.CodeOk, rep.ResponseCode)
	require.Equal(t, "OK", rep.ResponseMessage)
	require.Equal(t, sms.CodeDescriptions[sms.CodeOk], rep.Description)

	msgs := sm.PullAll()
	require.Len(t, msgs, 1)
	require.Equal(t, []string{"31600000000", "31600000001"}, msgs[0].Destinations)
	require.Equal(t, "YourSender", msgs[0].Sender)
	require.Equal(t, "123456789", *msgs[0].Reference)
	require.False(t, *msgs[0].ReplaceChars)
}

func TestSendVendorRejection(t *testing.T) {
	h, sm := newTestHandler()
	sm.SetRep(&sms.RepSt{Code: sms.CodeInsufficientCredit, Message: "No credits"}, nil)

	w := postForm(h, "/sms", url.Values{
		"destination": {"31600000000"},
		"message":     {"hi"},
		"sender":      {"YourSender"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	rep := mbTypes.SmsRep{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	require.Equal(t, "96", rep.ResponseCode)
}

func TestSendTransportFailure(t *testing.T) {
	h, sm := newTestHandler()
	sm.SetRep(nil, mbErrs.WithDesc(mbErrs.TransportFailure, "connection refused"))

	w := postForm(h, "/sms", url.Values{
		"destination": {"31600000000"},
		"message":     {"hi"},
		"sender":      {"YourSender"},
	})
	require.Equal(t, http.StatusBadGateway, w.Code)

	rep := mbTypes.ErrRep{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	require.Equal(t, mbErrs.TransportFailure.Error(), rep.ErrorCode)
}

func TestSendValidation(t *testing.T) {
	tests := []struct {
		name   string
		form   url.Values
		fields map[string]string
	}{
		{
			name: "empty form",
			form: url.Values{},
			fields: map[string]string{
				"destination": mbErrs.Required.Error(),
				"message":     mbErrs.Required.Error(),
				"sender":      mbErrs.Required.Error(),
			},
		},
		{
			name: "binding rules",
			form: url.Values{
				"destination":  {"31600000000"},
				"sender":       {"Acme"},
				"dlr_url":      {"not a url"},
				"replacechars": {"no"},
				"test":         {"yes"},
			},
			fields: map[string]string{
				"message":      mbErrs.Required.Error(),
				"dlr_url":      mbErrs.InvalidArgument.Error(),
				"replacechars": mbErrs.InvalidArgument.Error(),
				"test":         mbErrs.InvalidArgument.Error(),
			},
		},
		{
			name: "vendor rules",
			form: url.Values{
				"destination": {"abc"},
				"message":     {"hi"},
				"sender":      {"ThisSenderIsTooLong"},
			},
			fields: map[string]string{
				"destination": mbErrs.InvalidArgument.Error(),
				"sender":      mbErrs.InvalidArgument.Error(),
			},
		},
		{
			name: "only separators in destination",
			form: url.Values{
				"destination": {" , "},
				"message":     {"hi"},
				"sender":      {"Acme"},
			},
			fields: map[string]string{
				"destination": mbErrs.Required.Error(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sm := newTestHandler()

			w := postForm(h, "/sms", tt.form)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			rep := mbTypes.ErrRep{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
			require.Equal(t, mbErrs.FormValidate.Error(), rep.ErrorCode)
			require.Equal(t, tt.fields, rep.Fields)

			require.Empty(t, sm.PullAll())
		})
	}
}

func TestBalance(t *testing.T) {
	h, sm := newTestHandler()
	sm.SetCredits("42.5")

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	rep := mbTypes.BalanceRep{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	require.Equal(t, "42.5", rep.Credits)
}

func TestFormPage(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `name="destination"`)
}
