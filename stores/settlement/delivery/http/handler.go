package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/delivery"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/domain/settlement"
	"github.com/nftex/settlement/middleware"
)

type handler struct {
	settlement settlement.UseCase
}

func New(e *echo.Echo, settlementUC settlement.UseCase) {
	h := &handler{settlementUC}

	withAccount := middleware.WithAccount()

	listings := e.Group("/listings")
	listings.POST("", h.list, withAccount)

	listing := e.Group("/listing/:collection/:tokenId")
	listing.GET("", h.getListing)
	listing.PUT("/price", h.updatePrice, withAccount)
	listing.DELETE("", h.cancelListing, withAccount)
	listing.POST("/buy", h.buy, withAccount)

	auctions := e.Group("/auctions")
	auctions.POST("", h.createAuction, withAccount)

	auction := e.Group("/auction/:collection/:tokenId")
	auction.GET("", h.getAuction)
	auction.POST("/bids", h.placeBid, withAccount)
	auction.POST("/settle", h.settleAuction, withAccount)

	admin := e.Group("/admin")
	admin.PUT("/protocol-fee", h.setProtocolFee, withAccount)
	admin.PUT("/distribution-account", h.setDistributionAccount, withAccount)
	admin.POST("/collections", h.registerCollection, withAccount)
}

func listingIdFromPath(c echo.Context) settlement.ListingId {
	return settlement.ListingId{
		Collection: domain.Address(c.Param("collection")),
		TokenId:    domain.TokenId(c.Param("tokenId")),
	}
}

func auctionIdFromPath(c echo.Context) settlement.AuctionId {
	return settlement.AuctionId{
		Collection: domain.Address(c.Param("collection")),
		TokenId:    domain.TokenId(c.Param("tokenId")),
	}
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	p := &settlement.ListParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	listing, err := h.settlement.List(ctx, account, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, listing)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	listing, err := h.settlement.GetListing(ctx, listingIdFromPath(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listing)
}

func (h *handler) updatePrice(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	type params struct {
		Price int64 `json:"price"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	listing, err := h.settlement.UpdatePrice(ctx, account, listingIdFromPath(c), p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listing)
}

func (h *handler) cancelListing(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	if err := h.settlement.CancelListing(ctx, account, listingIdFromPath(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	if err := h.settlement.Buy(ctx, account, listingIdFromPath(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	p := &settlement.CreateAuctionParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	auction, err := h.settlement.CreateAuction(ctx, account, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, auction)
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	auction, err := h.settlement.GetAuction(ctx, auctionIdFromPath(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, auction)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	type params struct {
		Amount int64 `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.settlement.PlaceBid(ctx, account, auctionIdFromPath(c), p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) settleAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	if err := h.settlement.SettleAuction(ctx, account, auctionIdFromPath(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setProtocolFee(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	type params struct {
		Bps int64 `json:"bps"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.settlement.SetProtocolFee(ctx, account, p.Bps); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setDistributionAccount(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	type params struct {
		Account domain.Address `json:"account" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.settlement.SetDistributionAccount(ctx, account, p.Account); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) registerCollection(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	p := &settlement.RegisterCollectionParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.settlement.RegisterCollection(ctx, account, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
