package dto

// ErrorBody carries the human-readable failure message in an envelope.
type ErrorBody struct {
	Message string `json:"message"`
}

// Envelope is the uniform response shape of every gateway endpoint:
// {success, data} on success, {success, error} on failure.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps a message in a failure envelope.
func Fail(message string) Envelope {
	return Envelope{Success: false, Error: &ErrorBody{Message: message}}
}
