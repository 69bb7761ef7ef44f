package messagebird

import (
	"context"
	"net/http"
	"time"

	"github.com/supernova0730/mbsms/adapters/client/httpc"
	"github.com/supernova0730/mbsms/adapters/logger"
	"github.com/supernova0730/mbsms/adapters/sms"
	"github.com/supernova0730/mbsms/mbErrs"
	"github.com/supernova0730/mbsms/mbTools"
)

const (
	DefaultBaseUrl = "https://api.messagebird.com/"
	DefaultTimeout = 30 * time.Second

	PathSms     = "api/sms"
	PathCredits = "api/credits"
)

// St is a stateful MessageBird client. Message options set through the setters
// persist across sends until changed or cleared. Setters and SendSms are not
// safe for concurrent use; Send and Balance only read credentials and may be
// shared.
type St struct {
	lg    logger.Lite
	httpc httpc.HttpC

	username string
	password string

	sender       string
	destinations []string
	reference    *string
	responseType string
	inbox        bool
	replaceChars bool
	dlrUrl       string
	gatewayId    int64
	voice        bool
	test         bool
	premium      *sms.PremiumSt
	timestamp    string

	repCode    string
	repMessage string
	repCredits string
}

func New(lg logger.Lite, httpc httpc.HttpC, username, password string) *St {
	return &St{
		lg:    lg,
		httpc: httpc,

		username: username,
		password: password,

		destinations: []string{},
		responseType: sms.ResponseTypeXml,
		replaceChars: true,
	}
}

// HttpcOptions returns base options for an httpc client talking to the vendor.
// Empty baseUrl means DefaultBaseUrl, zero timeout means DefaultTimeout.
func HttpcOptions(baseUrl string, timeout time.Duration) httpc.OptionsSt {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return httpc.OptionsSt{
		Client:        &http.Client{},
		BaseUrl:       baseUrl,
		BaseLogPrefix: "MessageBird: ",
		Method:        http.MethodPost,
		Timeout:       timeout,
		CloseConn:     true,
	}
}

func (c *St) SetSender(v string) {
	c.sender = v
}

func (c *St) AddDestination(v string) {
	c.destinations = append(c.destinations, v)
}

func (c *St) ClearDestinations() {
	c.destinations = []string{}
}

func (c *St) SetReference(v string) {
	c.reference = &v
}

func (c *St) SetResponseType(v string) error {
	if !mbTools.SliceHasValue(sms.ResponseTypes, v) {
		return mbErrs.WithDesc(mbErrs.InvalidArgument, "unknown response type: "+v)
	}

	c.responseType = v

	return nil
}

func (c *St) SetInbox(v bool) {
	c.inbox = v
}

func (c *St) SetReplaceChars(v bool) {
	c.replaceChars = v
}

// SetReplaceCharsString accepts only "true" or "false".
func (c *St) SetReplaceCharsString(v string) error {
	b, err := mbTools.ParseBool(v)
	if err != nil {
		return err
	}

	c.replaceChars = b

	return nil
}

func (c *St) SetDlrUrl(v string) error {
	if !mbTools.ValidateUrl(v) {
		return mbErrs.WithDesc(mbErrs.InvalidArgument, "dlr url expected a valid URL")
	}

	c.dlrUrl = v

	return nil
}

// SetGateway sets the route by name ("basic" or "business"). Other names are ignored.
func (c *St) SetGateway(name string) {
	id, ok := sms.GatewayNames[name]
	if !ok {
		c.lg.Warnw("MessageBird: unknown gateway name, ignored", "gateway", name)
		return
	}

	c.SetGatewayId(id)
}

func (c *St) SetGatewayId(id int64) {
	c.gatewayId = id
}

// SetVoice sends messages over the voice gateway, overriding any gateway id.
func (c *St) SetVoice(v bool) {
	c.voice = v
}

func (c *St) SetTest(v bool) {
	c.test = v
}

func (c *St) SetPremium(tariff, shortcode int64, keyword string, mid, member *string) {
	c.premium = &sms.PremiumSt{
		Tariff:    tariff,
		Shortcode: shortcode,
		Keyword:   keyword,
		Mid:       mid,
		Member:    member,
	}
}

func (c *St) ClearPremium() {
	c.premium = nil
}

// Message returns a snapshot of the configured options with the given body.
func (c *St) Message(body string) *sms.MessageSt {
	msg := &sms.MessageSt{
		Sender:       c.sender,
		Destinations: append([]string(nil), c.destinations...),
		Body:         body,
		Reference:    c.reference,
		Timestamp:    c.timestamp,
		ResponseType: c.responseType,
		Inbox:        c.inbox,
		ReplaceChars: mbTools.NewPtr(c.replaceChars),
		Test:         c.test,
		Voice:        c.voice,
		DlrUrl:       c.dlrUrl,
		GatewayId:    c.gatewayId,
	}

	if c.premium != nil {
		p := *c.premium
		msg.Premium = &p
	}

	return msg
}

// SendSms sends body to the added destinations and remembers the vendor response
// for GetResponseCode and GetResponseMessage.
func (c *St) SendSms(ctx context.Context, body string) (*sms.RepSt, error) {
	rep, err := c.Send(ctx, c.Message(body))
	if rep != nil {
		c.remember(rep)
	}

	return rep, err
}

// Send sends msg without touching the client state.
func (c *St) Send(ctx context.Context, msg *sms.MessageSt) (*sms.RepSt, error) {
	if msg == nil {
		return nil, mbErrs.WithDesc(mbErrs.InvalidArgument, "message is nil")
	}

	if len(msg.Destinations) == 0 {
		return nil, mbErrs.WithDesc(mbErrs.InvalidArgument, "at least one destination is required")
	}

	form := httpc.Object2Form(c.sendReq(msg))

	opts := httpc.OptionsSt{
		Method:    http.MethodPost,
		Path:      PathSms,
		LogPrefix: "Send: ",
	}

	if msg.ResponseType != "" && msg.ResponseType != sms.ResponseTypeXml {
		raw, err := c.httpc.SendForm(ctx, form, opts)
		if err != nil {
			return nil, err
		}

		return &sms.RepSt{Raw: raw}, nil
	}

	repObj := &repSt{}

	raw, err := c.httpc.SendFormRecvXml(ctx, form, repObj, opts)
	if err != nil {
		return nil, err
	}

	if repObj.Item.ResponseCode == nil || repObj.Item.ResponseMessage == nil {
		c.lg.Errorw("MessageBird: response without code", nil, "rep_body", string(raw))
		return nil, mbErrs.WithDesc(mbErrs.ResponseParseError, "responseCode or responseMessage is missing")
	}

	rep := decodeRep(repObj, raw)

	if !rep.Success() {
		c.lg.Warnw("MessageBird: message rejected",
			"code", rep.Code,
			"message", rep.Message,
			"destinations", len(msg.Destinations),
		)
	}

	return rep, nil
}

func (c *St) sendReq(msg *sms.MessageSt) *sendReqSt {
	req := &sendReqSt{
		Username:     c.username,
		Password:     c.password,
		Destination:  msg.Destinations,
		ResponseType: msg.ResponseType,
		Sender:       msg.Sender,
		Body:         msg.Body,
		Reference:    msg.Reference,
		Timestamp:    msg.Timestamp,
		Inbox:        msg.Inbox,
		DlrUrl:       msg.DlrUrl,
		Test:         msg.Test,
	}

	if req.ResponseType == "" {
		req.ResponseType = sms.ResponseTypeXml
	}

	// only the non-default value goes on the wire
	if msg.ReplaceChars != nil && !*msg.ReplaceChars {
		req.ReplaceChars = mbTools.NewPtr(false)
	}

	if msg.Voice {
		req.GatewayId = sms.GatewayVoice
	} else {
		req.GatewayId = msg.GatewayId
	}

	if msg.Premium != nil {
		req.Tariff = mbTools.NewPtr(msg.Premium.Tariff)
		req.Shortcode = mbTools.NewPtr(msg.Premium.Shortcode)
		req.Keyword = mbTools.NewPtr(msg.Premium.Keyword)
		req.Mid = msg.Premium.Mid
		req.Member = msg.Premium.Member
	}

	return req
}

// GetBalance returns the account credits and remembers the vendor response.
func (c *St) GetBalance(ctx context.Context) (string, error) {
	rep, err := c.Balance(ctx)
	if rep != nil {
		c.remember(rep)
	}
	if err != nil {
		return "", err
	}

	return rep.Credits, nil
}

// Balance queries the account credits. When the vendor answers without credits
// but with a response code, the decoded response is returned together with a
// mbErrs.BalanceUnavailable error.
func (c *St) Balance(ctx context.Context) (*sms.RepSt, error) {
	form := httpc.Object2Form(&balanceReqSt{
		Username: c.username,
		Password: c.password,
	})

	repObj := &repSt{}

	raw, err := c.httpc.SendFormRecvXml(ctx, form, repObj, httpc.OptionsSt{
		Method:    http.MethodPost,
		Path:      PathCredits,
		LogPrefix: "Balance: ",
	})
	if err != nil {
		return nil, err
	}

	rep := decodeRep(repObj, raw)

	if repObj.Item.Credits == nil {
		if rep.Code != "" {
			return rep, mbErrs.WithDesc(mbErrs.BalanceUnavailable, rep.Code+" "+rep.Message)
		}
		return nil, mbErrs.WithDesc(mbErrs.ResponseParseError, "credits is missing")
	}

	return rep, nil
}

func (c *St) GetResponseCode() string {
	return c.repCode
}

func (c *St) GetResponseMessage() string {
	return c.repMessage
}

func (c *St) GetCreditBalance() string {
	return c.repCredits
}

func (c *St) remember(rep *sms.RepSt) {
	if rep.Code != "" {
		c.repCode = rep.Code
		c.repMessage = rep.Message
	}
	if rep.HasCredits {
		c.repCredits = rep.Credits
	}
}

// decodeRep takes code and message only when both are present.
func decodeRep(obj *repSt, raw []byte) *sms.RepSt {
	rep := &sms.RepSt{Raw: raw}

	if obj.Item.Credits != nil {
		rep.Credits = *obj.Item.Credits
		rep.HasCredits = true
	}

	if obj.Item.ResponseCode != nil && obj.Item.ResponseMessage != nil {
		rep.Code = *obj.Item.ResponseCode
		rep.Message = *obj.Item.ResponseMessage
	}

	return rep
}
