package mbTypes

type ErrRep struct {
	ErrorCode string            `json:"error_code"`
	Desc      string            `json:"desc,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

type SmsRep struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
	Description     string `json:"description,omitempty"`
	CreditBalance   string `json:"credit_balance,omitempty"`
}

type BalanceRep struct {
	Credits string `json:"credits"`
}
