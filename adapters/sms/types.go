package sms

const (
	GatewayBusiness int64 = 1
	GatewayBasic    int64 = 2
	GatewayVoice    int64 = 8
)

var GatewayNames = map[string]int64{
	"basic":    GatewayBasic,
	"business": GatewayBusiness,
}

const (
	ResponseTypeXml    = "XML"
	ResponseTypePlain  = "PLAIN"
	ResponseTypeSimple = "SIMPLE"
)

var ResponseTypes = []string{ResponseTypeXml, ResponseTypePlain, ResponseTypeSimple}

// TimestampLayout is the scheduled timestamp format, YYYYMMDDHHmm.
const TimestampLayout = "200601021504"

// Vendor response codes.
const (
	CodeOk                 = "01"
	CodeBadTimestamp       = "70"
	CodeMessageTooLong     = "72"
	CodeInvalidSender      = "89"
	CodeInvalidReceivers   = "93"
	CodeEmptyMessage       = "95"
	CodeInsufficientCredit = "96"
	CodeBadCredentials     = "97"
	CodeUnauthorizedIp     = "98"
	CodeConnectionFailure  = "99"
)

var CodeDescriptions = map[string]string{
	CodeOk:                 "Request has been processed successfully",
	CodeBadTimestamp:       "An incorrect timestamp notation has been used",
	CodeMessageTooLong:     "The message is too long",
	CodeInvalidSender:      "Invalid sender",
	CodeInvalidReceivers:   "One or several receivers are invalid",
	CodeEmptyMessage:       "No message has been selected",
	CodeInsufficientCredit: "The number of credits is insufficient",
	CodeBadCredentials:     "Invalid username and/or password",
	CodeUnauthorizedIp:     "Your ip address is not authorized - based on this account",
	CodeConnectionFailure:  "Cannot connect to the server",
}

type MessageSt struct {
	Sender       string
	Destinations []string
	Body         string
	Reference    *string
	Timestamp    string // TimestampLayout, empty when not scheduled
	ResponseType string // empty means ResponseTypeXml
	Inbox        bool
	ReplaceChars *bool // nil keeps the vendor default (true)
	Test         bool
	Voice        bool
	DlrUrl       string
	GatewayId    int64
	Premium      *PremiumSt
}

type PremiumSt struct {
	Tariff    int64
	Shortcode int64
	Keyword   string
	Mid       *string
	Member    *string
}

type RepSt struct {
	Code       string
	Message    string
	Credits    string
	HasCredits bool // credits node was present, possibly empty
	Raw        []byte
}

func (r *RepSt) Success() bool {
	return r.Code == CodeOk
}

func (r *RepSt) Description() string {
	return CodeDescriptions[r.Code]
}
