package domain

// MailMessage is a single outbound HTML email.
type MailMessage struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// MailResult reports the outcome of one send. Mailers never return errors;
// every failure is carried here.
type MailResult struct {
	Success bool
	Info    string
	Error   string
}

func MailSent(info string) MailResult {
	return MailResult{Success: true, Info: info}
}

func MailFailed(reason string) MailResult {
	return MailResult{Success: false, Error: reason}
}
