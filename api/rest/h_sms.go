package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supernova0730/mbsms/adapters/server/https"
	"github.com/supernova0730/mbsms/adapters/sms"
	"github.com/supernova0730/mbsms/mbErrs"
	"github.com/supernova0730/mbsms/mbTools"
	"github.com/supernova0730/mbsms/mbTypes"
)

func (o *St) hForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(formPage))
}

func (o *St) hSend(c *gin.Context) {
	reqObj := &SendReqSt{}
	if !https.BindForm(c, reqObj) {
		return
	}

	msg, err := reqObj.toMessage()
	if https.Error(c, err) {
		return
	}

	rep, err := o.sms.Send(c.Request.Context(), msg)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, mbTypes.SmsRep{
		ResponseCode:    rep.Code,
		ResponseMessage: rep.Message,
		Description:     rep.Description(),
		CreditBalance:   rep.Credits,
	})
}

func (o *St) hBalance(c *gin.Context) {
	rep, err := o.sms.Balance(c.Request.Context())
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, mbTypes.BalanceRep{
		Credits: rep.Credits,
	})
}

// toMessage applies the vendor rules binding tags cannot express:
// msisdn format and the sender length limits.
func (r *SendReqSt) toMessage() (*sms.MessageSt, error) {
	fields := map[string]mbErrs.Err{}

	msg := &sms.MessageSt{
		Sender: strings.TrimSpace(r.Sender),
		Body:   r.Message,
		DlrUrl: r.DlrUrl,
		Test:   r.Test == "true",
	}

	for _, d := range strings.Split(r.Destination, ",") {
		d = mbTools.NormalizeMsisdn(d)
		if d == "" {
			continue
		}
		if !mbTools.ValidateMsisdn(d) {
			fields["destination"] = mbErrs.InvalidArgument
			continue
		}
		msg.Destinations = append(msg.Destinations, d)
	}
	if len(msg.Destinations) == 0 {
		if _, ok := fields["destination"]; !ok {
			fields["destination"] = mbErrs.Required
		}
	}

	if !mbTools.ValidateSender(msg.Sender) {
		fields["sender"] = mbErrs.InvalidArgument
	}

	if r.Reference != "" {
		msg.Reference = mbTools.NewPtr(r.Reference)
	}

	if r.ReplaceChars != "" {
		msg.ReplaceChars = mbTools.NewPtr(r.ReplaceChars == "true")
	}

	if len(fields) > 0 {
		return nil, mbErrs.FormErr{Fields: fields}
	}

	return msg, nil
}
