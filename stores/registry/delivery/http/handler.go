package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/nftex/settlement/base/ctx"
	"github.com/nftex/settlement/base/delivery"
	"github.com/nftex/settlement/domain"
	"github.com/nftex/settlement/middleware"
)

type handler struct {
	assets   domain.AssetRegistry
	payments domain.PaymentRegistry
}

func New(e *echo.Echo, assets domain.AssetRegistry, payments domain.PaymentRegistry) {
	h := &handler{assets, payments}

	withAccount := middleware.WithAccount()

	pg := e.Group("/payments")
	pg.POST("/deposit", h.deposit, withAccount)
	pg.POST("/approve", h.approve, withAccount)
	pg.GET("/balance/:account", h.balance, middleware.IsValidAddress("account"))

	ag := e.Group("/assets")
	ag.POST("/mint", h.mint, withAccount)
	ag.GET("/:collection/:tokenId/holder", h.holder, middleware.IsValidAddress("collection"))
	ag.GET("/:collection/owner", h.collectionOwner, middleware.IsValidAddress("collection"))
	ag.PUT("/:collection/owner", h.setCollectionOwner, withAccount, middleware.IsValidAddress("collection"))
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	type params struct {
		Amount int64 `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.payments.Deposit(ctx, account, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	type params struct {
		Spender domain.Address `json:"spender"`
		Amount  int64          `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.payments.Approve(ctx, account, p.Spender, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) balance(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	amount, err := h.payments.BalanceOf(ctx, domain.Address(c.Param("account")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, domain.PaymentBalance{
		Account: domain.Address(c.Param("account")).ToLower(),
		Amount:  amount,
	})
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	type params struct {
		Collection domain.Address `json:"collection"`
		TokenId    domain.TokenId `json:"tokenId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.assets.Mint(ctx, account, p.Collection, p.TokenId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) holder(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	holder, err := h.assets.HolderOf(ctx, domain.Address(c.Param("collection")), domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, holder)
}

func (h *handler) collectionOwner(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	owner, err := h.assets.CollectionOwner(ctx, domain.Address(c.Param("collection")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, owner)
}

// setCollectionOwner claims an unowned collection for the caller, or lets
// the current owner hand it over.
func (h *handler) setCollectionOwner(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	account := c.Get("account").(domain.Address)

	type params struct {
		Owner domain.Address `json:"owner"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	collection := domain.Address(c.Param("collection"))
	owner, err := h.assets.CollectionOwner(ctx, collection)
	if err != nil && err != domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if err == nil && !owner.Equals(account) {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrNotAuthorizedCaller)
	}

	if err := h.assets.SetCollectionOwner(ctx, collection, p.Owner); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
