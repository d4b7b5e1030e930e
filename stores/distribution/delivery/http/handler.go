package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/delivery"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/distribution"
	"github.com/nftex/settlement/middleware"
)

type handler struct {
	distribution distribution.UseCase
}

func New(e *echo.Echo, distributionUC distribution.UseCase) {
	h := &handler{distributionUC}

	withAccount := middleware.WithAccount()

	splits := e.Group("/splits")
	splits.GET("/global", h.getGlobalSplits)
	splits.PUT("/global", h.setGlobalSplits, withAccount)
	splits.GET("/collection/:collection", h.getCollectionSplits)
	splits.PUT("/collection/:collection", h.setCollectionSplits, withAccount)

	e.GET("/distributions", h.getRecords)
}

type setSplitsParams struct {
	Entries []distribution.SplitEntry `json:"entries"`
}

func (h *handler) getGlobalSplits(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	table, err := h.distribution.GetGlobalSplits(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, table)
}

func (h *handler) setGlobalSplits(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	p := &setSplitsParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.distribution.SetGlobalSplits(ctx, account, p.Entries); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getCollectionSplits(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	table, err := h.distribution.GetCollectionSplits(ctx, domain.Address(c.Param("collection")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, table)
}

func (h *handler) setCollectionSplits(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	p := &setSplitsParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	collection := domain.Address(c.Param("collection"))
	if err := h.distribution.SetCollectionSplits(ctx, account, collection, p.Entries); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getRecords(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Collection *domain.Address `query:"collection"`
		TokenId    *domain.TokenId `query:"tokenId"`
		Offset     int             `query:"offset"`
		Limit      int             `query:"limit"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []distribution.FindRecordOptions{}
	if p.Collection != nil && p.TokenId != nil {
		opts = append(opts, distribution.RecordWithToken(*p.Collection, *p.TokenId))
	} else if p.Collection != nil {
		opts = append(opts, distribution.RecordWithCollection(*p.Collection))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, distribution.RecordWithPagination(p.Offset, p.Limit))
	}

	records, err := h.distribution.GetRecords(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, records)
}
