package httpc

const (
	LogRequest         = 1
	LogResponse        = 2
	NoLogError         = 4
	NoLogNotAuthorized = 8
	NoLogBadStatus     = 16
)

const (
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeXml  = "application/xml"
)

// Form fields masked in logs.
var SecretFormFields = []string{"password"}
