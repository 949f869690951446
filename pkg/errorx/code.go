package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest       Code = 100001
	BadResponse      Code = 100002
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	AlreadyExists    Code = 100006
	Internal         Code = 100007
	Unavailable      Code = 100008

	// Chain access codes
	UnsupportedNetwork Code = 200001
	NetworkError       Code = 200002
	Timeout            Code = 200003

	// Transaction submission codes
	UserRejected Code = 300001
	Reverted     Code = 300002
)

// Sentinel returns a message-less error for a code, suitable as the target of
// errors.Is.
func Sentinel(code Code) Error {
	return Error{Code: code}
}
