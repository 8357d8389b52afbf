package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrCartEmpty
	ErrGateway
	ErrPaymentNotSuccessful
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrForbidden:            "forbidden",
	ErrCredentialExists:     "email or phone already exists",
	ErrInvalidPassword:      "password invalid",
	ErrCartEmpty:            "cart is empty",
	ErrGateway:              "payment could not be processed",
	ErrPaymentNotSuccessful: "payment was not successful",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidPassword:      http.StatusBadRequest,
	ErrCartEmpty:            http.StatusBadRequest,
	ErrGateway:              http.StatusBadGateway,
	ErrPaymentNotSuccessful: http.StatusPaymentRequired,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrForbidden:            "0005",
	ErrCredentialExists:     "0006",
	ErrInvalidPassword:      "0007",
	ErrCartEmpty:            "0008",
	ErrGateway:              "0009",
	ErrPaymentNotSuccessful: "0010",
}
