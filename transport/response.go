package transport

import (
	"encoding/json"
	"net/http"

	"github.com/OuicestnousCA/oca/constant"
	"github.com/OuicestnousCA/oca/utils/errors"
)

type apiResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// coded is satisfied by CustomError and GatewayError.
type coded interface {
	error
	ErrorCode() string
	ErrorHTTPCode() int
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	c, ok := err.(coded)
	if !ok {
		c = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(c.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(apiResponse{
		Code:    c.ErrorCode(),
		Message: c.Error(),
	})
}
