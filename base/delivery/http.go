package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidNumberFormat, http.StatusBadRequest},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	{domain.ErrNotConnected, http.StatusUnauthorized},
	{domain.ErrActionNotOffered, http.StatusForbidden},
	{domain.ErrFlowBusy, http.StatusConflict},
	{domain.ErrWalletUnavailable, http.StatusServiceUnavailable},
	{domain.ErrConfigurationMissing, http.StatusServiceUnavailable},
	{domain.ErrContractAddressMissing, http.StatusServiceUnavailable},
	{domain.ErrMetadataUnresolvable, http.StatusBadGateway},
	{domain.ErrUploadFailure, http.StatusBadGateway},
}

// StatusOf picks the response code for err, falling back to fallback.
func StatusOf(err error, fallback int) int {
	for _, es := range errStatus {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
