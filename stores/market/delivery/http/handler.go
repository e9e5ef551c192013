package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/market"
	"github.com/x-xyz/nftmarket/middleware"
)

const maxImageBytes = 32 << 20

type handler struct {
	market market.UseCase
}

func New(e *echo.Echo, market market.UseCase) {
	h := &handler{market}

	e.GET("/nfts", h.browse)
	e.POST("/nfts", h.mint)
	e.GET("/nfts/:tokenId", h.detail, middleware.IsValidTokenId("tokenId"))
	e.POST("/nfts/:tokenId/buy", h.buy, middleware.IsValidTokenId("tokenId"))
	e.POST("/nfts/:tokenId/resell", h.resell, middleware.IsValidTokenId("tokenId"))
	e.GET("/my-nfts", h.myItems)
}

// browse
//
//	@Summary		Unsold listings
//	@Description	Fetches every unsold market item and resolves its metadata
//	@Tags			nfts
//	@Produce		json
//	@Success		200	{array}	listing.Listing
//	@Failure		502
//	@Router			/nfts [get]
func (h *handler) browse(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.market.Browse(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// myItems
//
//	@Summary	Items owned by the connected account
//	@Tags		nfts
//	@Produce	json
//	@Success	200	{array}	listing.Listing
//	@Failure	401
//	@Router		/my-nfts [get]
func (h *handler) myItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.market.MyItems(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// detail
//
//	@Summary		Item detail
//	@Description	The listing plus the viewer's relation and the action offered to it
//	@Tags			nfts
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	market.Detail
//	@Failure		400
//	@Failure		404
//	@Router			/nfts/{tokenId} [get]
func (h *handler) detail(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	tokenId := domain.TokenId(c.Param("tokenId"))
	if res, err := h.market.Detail(ctx, tokenId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// buy
//
//	@Summary		Buy item
//	@Description	Starts a buy flow paying the on-chain price; poll /flows/{id} for the outcome
//	@Tags			nfts
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		202		{object}	flow.Flow
//	@Failure		401
//	@Failure		403
//	@Failure		409
//	@Router			/nfts/{tokenId}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	tokenId := domain.TokenId(c.Param("tokenId"))
	if res, err := h.market.Buy(ctx, tokenId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusAccepted, res)
	}
}

// resell
//
//	@Summary	Relist owned item
//	@Tags		nfts
//	@Accept		json
//	@Produce	json
//	@Param		tokenId	path		string				true	"token id"
//	@Param		body	body		object{price=string}	true	"price in ETH"
//	@Success	202		{object}	flow.Flow
//	@Failure	400
//	@Failure	403
//	@Router		/nfts/{tokenId}/resell [post]
func (h *handler) resell(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Price string `json:"price" validate:"required,price"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	tokenId := domain.TokenId(c.Param("tokenId"))
	if res, err := h.market.Resell(ctx, tokenId, p.Price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusAccepted, res)
	}
}

// mint
//
//	@Summary		Mint and list
//	@Description	Uploads the image and its metadata, then lists the new token
//	@Tags			nfts
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image		formData	file	true	"asset"
//	@Param			name		formData	string	true	"name"
//	@Param			description	formData	string	true	"description"
//	@Param			price		formData	string	true	"price in ETH"
//	@Success		202			{object}	flow.Flow
//	@Failure		400
//	@Failure		409
//	@Router			/nfts [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	form := market.MintForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("image: %w", domain.ErrBadParamInput))
	}
	if fh.Size > maxImageBytes {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("image over %d bytes: %w", maxImageBytes, domain.ErrBadParamInput))
	}
	f, err := fh.Open()
	if err != nil {
		ctx.WithField("err", err).Error("FormFile.Open failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	defer f.Close()

	if form.Image, err = io.ReadAll(io.LimitReader(f, maxImageBytes)); err != nil {
		ctx.WithFields(log.Fields{"err": err, "filename": fh.Filename}).Error("io.ReadAll failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	form.Filename = fh.Filename

	if res, err := h.market.Mint(ctx, form); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusAccepted, res)
	}
}
