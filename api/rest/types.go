package rest

type SendReqSt struct {
	Destination  string `form:"destination" binding:"required"`
	Message      string `form:"message" binding:"required"`
	Sender       string `form:"sender" binding:"required"`
	Reference    string `form:"reference"`
	DlrUrl       string `form:"dlr_url" binding:"omitempty,url"`
	ReplaceChars string `form:"replacechars" binding:"omitempty,oneof=true false"`
	Test         string `form:"test" binding:"omitempty,oneof=true false"`
}

const formPage = `<!DOCTYPE html>
<html>
<head><title>MessageBird SMS</title></head>
<body>
<form method="post" action="/sms">
  <p><label>Destination <input type="text" name="destination"></label></p>
  <p><label>Sender <input type="text" name="sender" maxlength="16"></label></p>
  <p><label>Reference <input type="text" name="reference"></label></p>
  <p><label>Message <textarea name="message"></textarea></label></p>
  <p><input type="submit" value="Send"></p>
</form>
</body>
</html>
`
