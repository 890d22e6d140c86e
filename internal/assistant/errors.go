package assistant

// Every error Ask returns is one of the types below. Transport and shape errors
// carry messages starting with "Error" so callers relaying plain strings can
// recognize them.

const (
	msgQueryRequired    = "'query' field is required in payload."
	msgPayloadNotObject = "payload must be a JSON object."
	msgUnexpectedShape  = "Error: Unexpected response format from the LLM API."
	transportPrefix     = "Error occurred while calling the LLM API: "
)

// the payload was rejected before any outbound call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// the outbound call itself failed (network, auth, rate limit, provider status)
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return transportPrefix + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// the provider answered but no assistant text could be located
type ShapeError struct {
	Err error
}

func (e *ShapeError) Error() string { return msgUnexpectedShape }

func (e *ShapeError) Unwrap() error { return e.Err }
