package errors

import "github.com/OuicestnousCA/oca/constant"

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// GatewayError propagates the payment gateway's own HTTP status and
// message through the boundary unchanged.
type GatewayError struct {
	httpCode int
	message  string
}

func (g GatewayError) Error() string {
	return g.message
}

func (g GatewayError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrGateway]
}

func (g GatewayError) ErrorHTTPCode() int {
	return g.httpCode
}

func SetGatewayError(httpCode int, message string) GatewayError {
	return GatewayError{
		httpCode: httpCode,
		message:  message,
	}
}
