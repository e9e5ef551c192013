package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/domain/wallet"
)

type handler struct {
	connection wallet.ConnectionUseCase
}

func New(e *echo.Echo, connection wallet.ConnectionUseCase) {
	h := &handler{connection}

	g := e.Group("/session")
	g.GET("", h.check)
	g.POST("/connect", h.connect)
	g.POST("/account", h.switchAccount)
	g.DELETE("", h.disconnect)
}

// check
//
//	@Summary		Connection state
//	@Description	Reads the provider accounts without prompting and stores the result
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	appstate.Connection
//	@Failure		503
//	@Router			/session [get]
func (h *handler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.connection.Check(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// connect
//
//	@Summary		Connect wallet
//	@Description	Requests a signer and verifies a signed challenge
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	appstate.Connection
//	@Failure		503
//	@Router			/session/connect [post]
func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.connection.Connect(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// switchAccount
//
//	@Summary	Switch active account
//	@Tags		session
//	@Accept		json
//	@Produce	json
//	@Param		body	body		object{index=int}	true	"derived account index"
//	@Success	200		{object}	appstate.Connection
//	@Failure	400
//	@Router		/session/account [post]
func (h *handler) switchAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Index *uint32 `json:"index" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.connection.SwitchAccount(ctx, *p.Index); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// disconnect
//
//	@Summary	Disconnect wallet
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	appstate.Connection
//	@Router		/session [delete]
func (h *handler) disconnect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.connection.Disconnect(ctx))
}
