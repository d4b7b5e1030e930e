package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/delivery"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/activity"
)

type handler struct {
	activities activity.ActivityHistoryRepo
}

func New(e *echo.Echo, activities activity.ActivityHistoryRepo) {
	h := &handler{activities}

	e.GET("/activities", h.getActivities)
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Account    *domain.Address `query:"account"`
		Collection *domain.Address `query:"collection"`
		TokenId    *domain.TokenId `query:"tokenId"`
		Types      string          `query:"types"`
		Offset     int             `query:"offset"`
		Limit      int             `query:"limit"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []activity.FindActivityHistoryOptions{}
	if p.Account != nil {
		opts = append(opts, activity.ActivityHistoryWithAccount(*p.Account))
	}
	if p.Collection != nil && p.TokenId != nil {
		opts = append(opts, activity.ActivityHistoryWithToken(*p.Collection, *p.TokenId))
	} else if p.Collection != nil {
		opts = append(opts, activity.ActivityHistoryWithCollection(*p.Collection))
	}
	if len(p.Types) > 0 {
		types := []activity.ActivityHistoryType{}
		for _, t := range strings.Split(p.Types, ",") {
			types = append(types, activity.ActivityHistoryType(t))
		}
		opts = append(opts, activity.ActivityHistoryWithTypes(types...))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, activity.ActivityHistoryWithPagination(p.Offset, p.Limit))
	}

	items, err := h.activities.FindActivities(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	count, err := h.activities.CountActivities(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type response struct {
		Items []activity.ActivityHistory `json:"items"`
		Count int                        `json:"count"`
	}
	return delivery.MakeJsonResp(c, http.StatusOK, response{Items: items, Count: count})
}
