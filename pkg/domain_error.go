package pkg

// DomainError carries an application error code alongside the HTTP status
// the handlers should answer with.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func NewDomainErrorSimple(code, message string, httpStatus int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *DomainError) Error() string {
	return e.Code + ": " + e.Message
}

// HTTPError is the JSON error envelope returned by every endpoint.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
