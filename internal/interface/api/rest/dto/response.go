package dto

// Envelope is the uniform response body of every JSON endpoint:
// {success, message, data?, errors?}.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func Err(message string, errs ...string) Envelope {
	return Envelope{Success: false, Message: message, Errors: errs}
}

// ErrWithData carries a structured payload on a failure, e.g. the
// approval-gate rejection body.
func ErrWithData(message string, data any) Envelope {
	return Envelope{Success: false, Message: message, Data: data}
}
