package model

// ErrorWithStatusCode carries the HTTP status a failure should surface with.
// Handlers translate it into the wire shape {"error": message}.
type ErrorWithStatusCode struct {
	Message    string `json:"error"`
	Code       string `json:"-"`
	StatusCode int    `json:"-"`
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func ErrorWrapper(err error, code string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Message:    err.Error(),
		Code:       code,
		StatusCode: statusCode,
	}
}
