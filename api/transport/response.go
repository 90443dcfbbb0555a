package transport

import "encoding/json"

// Envelope is the wrapped API response used by the collection and create
// endpoints. Single-entity reads, update and delete write the bare entity
// instead; that split is part of the wire contract.
type Envelope struct {
	Success bool        `json:"success"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
	}
}

// NewError returns an error envelope.
func NewError(code string, message string) Envelope {
	return Envelope{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
