package syserr

import "encoding/json"

// ErrorResponse is the flat, serializable form of a PlatformError.
//
// The cause chain is excluded; only the code, its name and the two
// messages are exported.
type ErrorResponse struct {
	// Code is the numeric platform error code.
	Code uint32 `json:"code"`

	// Name is the symbolic name of the code, when known.
	Name string `json:"name,omitempty"`

	// Message is the platform-supplied description of the code.
	Message string `json:"message"`

	// CustomMessage is the caller annotation, when present.
	CustomMessage string `json:"custom_message,omitempty"`
}

// ToJSON converts an error carrying a platform code into an ErrorResponse.
// Returns nil if err is nil or its chain carries no platform code.
//
// Example:
//
//	if resp := syserr.ToJSON(err); resp != nil {
//	    json.NewEncoder(w).Encode(resp)
//	}
func ToJSON(err error) *ErrorResponse {
	platformErr, ok := FromError(err)
	if !ok {
		return nil
	}
	return platformErr.response()
}

func (e *PlatformError) response() *ErrorResponse {
	return &ErrorResponse{
		Code:          uint32(e.code),
		Name:          e.Name(),
		Message:       e.message,
		CustomMessage: e.customMessage,
	}
}

// MarshalJSON implements json.Marshaler for PlatformError.
//
// Example:
//
//	data, _ := json.Marshal(syserr.NewWithMessage(2, "loading profile"))
//	// {"code":2,"name":"ENOENT","message":"no such file or directory","custom_message":"loading profile"}
func (e *PlatformError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.response())
}
