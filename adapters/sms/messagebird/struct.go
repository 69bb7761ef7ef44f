package messagebird

import (
	"encoding/xml"
)

type sendReqSt struct {
	Username     string   `form:"username"`
	Password     string   `form:"password"`
	Destination  []string `form:"destination,comma"`
	ResponseType string   `form:"responsetype"`
	Sender       string   `form:"sender"`
	Body         string   `form:"body"`
	Reference    *string  `form:"reference"`
	Timestamp    string   `form:"timestamp,omitempty"`
	Inbox        bool     `form:"inbox,omitempty"`
	ReplaceChars *bool    `form:"replacechars"`
	DlrUrl       string   `form:"dlr_url,omitempty"`
	GatewayId    int64    `form:"gateway_id,omitempty"`
	Tariff       *int64   `form:"tariff"`
	Shortcode    *int64   `form:"shortcode"`
	Keyword      *string  `form:"keyword"`
	Mid          *string  `form:"mid"`
	Member       *string  `form:"member"`
	Test         bool     `form:"test,omitempty"`
}

type balanceReqSt struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// <response><item>...</item></response>
type repSt struct {
	XMLName xml.Name `xml:"response"`
	Item    struct {
		Credits         *string `xml:"credits"`
		ResponseCode    *string `xml:"responseCode"`
		ResponseMessage *string `xml:"responseMessage"`
	} `xml:"item"`
}
