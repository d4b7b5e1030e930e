package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/service/query"
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

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidPrice) ||
			errors.Is(err, domain.ErrInvalidTimeRange) ||
			errors.Is(err, domain.ErrInvalidSplits) ||
			errors.Is(err, domain.ErrBidTooLow) ||
			errors.Is(err, domain.ErrInsufficientFunds):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrNotSeller) || errors.Is(err, domain.ErrNotAuthorizedCaller):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrCollectionNotAllowed):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrListingNotActive) ||
			errors.Is(err, domain.ErrAuctionNotStarted) ||
			errors.Is(err, domain.ErrAuctionNotEnded) ||
			errors.Is(err, domain.ErrAuctionEnded) ||
			errors.Is(err, domain.ErrAlreadySettled) ||
			errors.Is(err, domain.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrTransferFailed):
			status = http.StatusBadGateway
		}
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
