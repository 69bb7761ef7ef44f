package mbErrs

// Err

type Err string

func (e Err) Error() string {
	return string(e)
}

// ErrWithDesc

type ErrWithDesc struct {
	Err  Err
	Desc string
}

func (e ErrWithDesc) Error() string {
	return e.Err.Error() + ", desc:" + e.Desc
}

func (e ErrWithDesc) Unwrap() error {
	return e.Err
}

// FormErr

type FormErr struct {
	Fields map[string]Err
}

func (e FormErr) Error() string {
	return FormValidate.Error()
}

func (e FormErr) Unwrap() error {
	return FormValidate
}

// errors

const (
	InvalidArgument    = Err("invalid_argument")
	TransportFailure   = Err("transport_failure")
	ResponseParseError = Err("response_parse_error")
	BalanceUnavailable = Err("balance_unavailable")
	BadStatusCode      = Err("bad_status_code")
	NotAuthorized      = Err("not_authorized")
	ServiceNA          = Err("service_not_available")
	BadFormParams      = Err("bad_form_params")
	FormValidate       = Err("form_validate")
	Required           = Err("required")
)

func WithDesc(err Err, desc string) ErrWithDesc {
	return ErrWithDesc{Err: err, Desc: desc}
}
