package http

import (
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ledger/base/amount"
	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/base/delivery"
	"github.com/x-xyz/ledger/base/validator"
	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/ledger"
	"github.com/x-xyz/ledger/middleware"
	authMiddleware "github.com/x-xyz/ledger/stores/auth/delivery/http/middleware"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

type handler struct {
	ledger ledger.Usecase
}

func New(e *echo.Echo, lu ledger.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		ledger: lu,
	}

	auth := authMiddleware.Auth()

	tokens := e.Group("/tokens")
	tokens.POST("", h.createToken, auth)
	tokens.GET("", h.getAllListedNFTs)
	tokens.GET("/mine", h.getMyNFTs, auth)
	tokens.GET("/:tokenId", h.getNFTListing)
	tokens.POST("/:tokenId/trade", h.tradeNFT, auth)
	tokens.POST("/:tokenId/buy", h.sellNFT, auth)
	tokens.POST("/:tokenId/list", h.listNFT, auth)
	tokens.POST("/:tokenId/unlist", h.cancelListing, auth)
	tokens.POST("/:tokenId/auction", h.auctionNFT, auth)
	tokens.GET("/:tokenId/auction", h.getAuction)
	tokens.POST("/:tokenId/bids", h.bid, auth)
	tokens.POST("/:tokenId/finalize", h.finalizeAuction, auth)

	e.GET("/auctions", h.getAuctionedNFTs)

	config := e.Group("/config")
	config.GET("/fees", h.getFeeConfig)
	config.PUT("/fees/listing", h.updateListingFeePercent, auth)
	config.PUT("/fees/royalty", h.updateRoyaltyPercent, auth)

	balances := e.Group("/balances")
	balances.GET("/:address", h.balanceOf, middleware.IsValidAddress("address"))
	balances.POST("/withdraw", h.withdraw, auth)

	e.GET("/events", h.findEvents)
}

func tokenIdParam(c echo.Context) (domain.TokenId, error) {
	return domain.ParseTokenId(c.Param("tokenId"))
}

// bind reads and validates the request body
func bind(c echo.Context, p interface{}) error {
	if err := c.Bind(p); err != nil {
		return err
	}
	return c.Validate(p)
}

// toWei parses an amount already checked by the `wei` tag
func toWei(s string) *big.Int {
	v, _ := domain.ParseAmount(s)
	return v
}

func (h *handler) fail(c echo.Context, op string, err error) error {
	c.Get("ctx").(ctx.Ctx).WithField("err", err).Warn(op + " failed")
	return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
}

func (h *handler) createToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		TokenURI string `json:"tokenURI" validate:"required"`
		Price    string `json:"price" validate:"required,wei"`
	}
	p := &params{}
	if err := bind(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	l, err := h.ledger.CreateToken(ctx, authMiddleware.Caller(c), p.TokenURI, toWei(p.Price))
	if err != nil {
		return h.fail(c, "ledger.CreateToken", err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, toListingResp(l))
}

func (h *handler) getAllListedNFTs(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	ls, err := h.ledger.GetAllListedNFTs(ctx)
	if err != nil {
		return h.fail(c, "ledger.GetAllListedNFTs", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toListingResps(ls))
}

func (h *handler) getMyNFTs(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	ls, err := h.ledger.GetMyNFTs(ctx, authMiddleware.Caller(c))
	if err != nil {
		return h.fail(c, "ledger.GetMyNFTs", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toListingResps(ls))
}

func (h *handler) getNFTListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId, err := tokenIdParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.ledger.GetNFTListing(ctx, tokenId)
	if err != nil {
		return h.fail(c, "ledger.GetNFTListing", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toListingResp(l))
}

func (h *handler) tradeNFT(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId, err := tokenIdParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		To domain.Address `json:"to" validate:"required,address"`
	}
	p := &params{}
	if err := bind(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	l, err := h.ledger.TradeNFT(ctx, authMiddleware.Caller(c), p.To, tokenId)
	if err != nil {
		return h.fail(c, "ledger.TradeNFT", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toListingResp(l))
}

func (h *handler) sellNFT(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId, err := tokenIdParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Payment string `json:"payment" validate:"required,wei"`
	}
	p := &params{}
	if err := bind(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	s, err := h.ledger.SellNFT(ctx, authMiddleware.Caller(c), tokenId, toWei(p.Payment))
	if err != nil {
		return h.fail(c, "ledger.SellNFT", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toSettlementResp(s))
}

func (h *handler) listNFT(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId, err := tokenIdParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Price string `json:"price" validate:"required,wei"`
	}
	p := &params{}
	if err := bind(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	l, err := h.ledger.ListNFT(ctx, authMiddleware.Caller(c), tokenId, toWei(p.Price))
	if err != nil {
		return h.fail(c, "ledger.ListNFT", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toListingResp(l))
}

func (h *handler) cancelListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId, err := tokenIdParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.ledger.CancelListing(ctx, authMiddleware.Caller(c), tokenId)
	if err != nil {
		return h.fail(c, "ledger.CancelListing", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toListingResp(l))
}

func (h *handler) auctionNFT(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId, err := tokenIdParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		DurationSeconds int64 `json:"durationSeconds" validate:"required,gt=0"`
	}
	p := &params{}
	if err := bind(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	a, err := h.ledger.AuctionNFT(ctx, authMiddleware.Caller(c), tokenId, time.Duration(p.DurationSeconds)*time.Second)
	if err != nil {
		return h.fail(c, "ledger.AuctionNFT", err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, toAuctionResp(a))
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId, err := tokenIdParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	a, err := h.ledger.GetAuction(ctx, tokenId)
	if err != nil {
		return h.fail(c, "ledger.GetAuction", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toAuctionResp(a))
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId, err := tokenIdParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		Amount string `json:"amount" validate:"required,wei"`
	}
	p := &params{}
	if err := bind(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	a, err := h.ledger.Bid(ctx, authMiddleware.Caller(c), tokenId, toWei(p.Amount))
	if err != nil {
		return h.fail(c, "ledger.Bid", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toAuctionResp(a))
}

func (h *handler) finalizeAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId, err := tokenIdParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	r, err := h.ledger.FinalizeAuction(ctx, authMiddleware.Caller(c), tokenId)
	if err != nil {
		return h.fail(c, "ledger.FinalizeAuction", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toAuctionResultResp(r))
}

func (h *handler) getAuctionedNFTs(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	nfts, err := h.ledger.GetAuctionedNFTs(ctx)
	if err != nil {
		return h.fail(c, "ledger.GetAuctionedNFTs", err)
	}

	res := make([]*auctionedNFTResp, 0, len(nfts))
	for _, n := range nfts {
		res = append(res, &auctionedNFTResp{
			Listing: toListingResp(n.Listing),
			Auction: toAuctionResp(n.Auction),
		})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getFeeConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	fees, err := h.ledger.GetFeeConfig(ctx)
	if err != nil {
		return h.fail(c, "ledger.GetFeeConfig", err)
	}

	res := struct {
		*ledger.FeeConfig
		MarketplaceOwner domain.Address `json:"marketplaceOwner"`
	}{
		FeeConfig:        fees,
		MarketplaceOwner: h.ledger.MarketplaceOwner(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type percentParams struct {
	Percent *int `json:"percent" validate:"required,min=0,max=100"`
}

func (h *handler) updateListingFeePercent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	p := &percentParams{}
	if err := bind(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	fees, err := h.ledger.UpdateListingFeePercent(ctx, authMiddleware.Caller(c), *p.Percent)
	if err != nil {
		return h.fail(c, "ledger.UpdateListingFeePercent", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, fees)
}

func (h *handler) updateRoyaltyPercent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	p := &percentParams{}
	if err := bind(c, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	fees, err := h.ledger.UpdateRoyaltyPercent(ctx, authMiddleware.Caller(c), *p.Percent)
	if err != nil {
		return h.fail(c, "ledger.UpdateRoyaltyPercent", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, fees)
}

func (h *handler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address")).ToLower()

	b, err := h.ledger.BalanceOf(ctx, address)
	if err != nil {
		return h.fail(c, "ledger.BalanceOf", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, &balanceResp{
		Address:      address,
		Balance:      wei(b),
		BalanceEther: amount.FormatEther(b),
	})
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := authMiddleware.Caller(c)

	paid, err := h.ledger.Withdraw(ctx, caller)
	if err != nil {
		return h.fail(c, "ledger.Withdraw", err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, &balanceResp{
		Address:      caller,
		Balance:      wei(paid),
		BalanceEther: amount.FormatEther(paid),
	})
}

func (h *handler) findEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	offset, limit := 0, defaultEventLimit
	var account, types string
	var tokenId, seqGT uint64
	if err := echo.QueryParamsBinder(c).
		Int("offset", &offset).
		Int("limit", &limit).
		String("account", &account).
		Uint64("tokenId", &tokenId).
		String("types", &types).
		Uint64("seqGt", &seqGT).
		BindError(); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if limit < 1 || limit > maxEventLimit {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("limit must be within 1 and %d: %w", maxEventLimit, domain.ErrBadParamInput))
	}
	if account != "" && !validator.IsValidAddress(account) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	opts := []ledger.FindEventOptions{ledger.EventWithPagination(offset, limit)}
	if account != "" {
		opts = append(opts, ledger.EventWithAccount(domain.Address(account)))
	}
	if tokenId != 0 {
		opts = append(opts, ledger.EventWithTokenId(domain.TokenId(tokenId)))
	}
	if types != "" {
		eventTypes := []ledger.EventType{}
		for _, t := range strings.Split(types, ",") {
			eventTypes = append(eventTypes, ledger.EventType(strings.TrimSpace(t)))
		}
		opts = append(opts, ledger.EventWithTypes(eventTypes...))
	}
	if c.QueryParam("seqGt") != "" {
		opts = append(opts, ledger.EventWithSeqGT(seqGT))
	}

	events, err := h.ledger.FindEvents(ctx, opts...)
	if err != nil {
		return h.fail(c, "ledger.FindEvents", err)
	}

	res := make([]*eventResp, 0, len(events))
	for _, e := range events {
		res = append(res, toEventResp(e))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
