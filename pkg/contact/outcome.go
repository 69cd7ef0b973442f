package contact

import "net/http"

// Status classifies the result of a relay call.
type Status string

const (
	StatusOK              Status = "ok"
	StatusValidationError Status = "validation_error"
	StatusProviderError   Status = "provider_error"
	StatusTransportError  Status = "transport_error"
)

const (
	msgSent             = "Email sent successfully"
	msgProviderFallback = "Failed to send email. Please try again later."
	msgUnexpected       = "An unexpected error occurred"
)

// Outcome is the single result reported for one submission.
type Outcome struct {
	Status     Status
	Message    string
	ProviderID string // Set only when Status is StatusOK
	StatusCode int    // HTTP status the outcome maps to
}

// OK reports whether the provider accepted the message.
func (o Outcome) OK() bool {
	return o.Status == StatusOK
}

func accepted(id string) Outcome {
	return Outcome{
		Status:     StatusOK,
		Message:    msgSent,
		ProviderID: id,
		StatusCode: http.StatusOK,
	}
}

func rejected(ve *ValidationError) Outcome {
	return Outcome{
		Status:     StatusValidationError,
		Message:    ve.Message,
		StatusCode: http.StatusBadRequest,
	}
}

func providerFailure(status int, message string) Outcome {
	if message == "" {
		message = msgProviderFallback
	}
	if status < 300 || status > 599 {
		status = http.StatusInternalServerError
	}
	return Outcome{
		Status:     StatusProviderError,
		Message:    message,
		StatusCode: status,
	}
}

func transportFailure(err error) Outcome {
	message := msgUnexpected
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return Outcome{
		Status:     StatusTransportError,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}
