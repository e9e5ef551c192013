package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain/flow"
)

type handler struct {
	flows flow.Registry
}

func New(e *echo.Echo, flows flow.Registry) {
	h := &handler{flows}

	g := e.Group("/flows")
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.cancel)
}

// get
//
//	@Summary		Flow status
//	@Description	Poll until state is success or failed. With wait=true the call blocks until then.
//	@Tags			flows
//	@Produce		json
//	@Param			id		path		string	true	"flow id"
//	@Param			wait	query		bool	false	"block until terminal"
//	@Success		200		{object}	flow.Flow
//	@Failure		404
//	@Router			/flows/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Param("id")

	var (
		res *flow.Flow
		err error
	)
	if c.QueryParam("wait") == "true" {
		ctx.Context = c.Request().Context()
		res, err = h.flows.Wait(ctx, id)
	} else {
		res, err = h.flows.Get(id)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// cancel
//
//	@Summary	Cancel a running flow
//	@Tags		flows
//	@Produce	json
//	@Param		id	path		string	true	"flow id"
//	@Success	200	{object}	flow.Flow
//	@Failure	404
//	@Router		/flows/{id} [delete]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Param("id")

	res, err := h.flows.Cancel(id)
	if err != nil {
		ctx.WithFields(log.Fields{"flowId": id, "err": err}).Warn("flows.Cancel failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
