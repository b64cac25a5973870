package http

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/base/validator"
	"github.com/x-xyz/ledger/domain"
	"github.com/x-xyz/ledger/domain/ledger"
	"github.com/x-xyz/ledger/domain/ledger/mocks"
	dmocks "github.com/x-xyz/ledger/domain/mocks"
	authMiddleware "github.com/x-xyz/ledger/stores/auth/delivery/http/middleware"
)

const (
	alice = domain.Address("0x00000000000000000000000000000000000a11ce")
	bob   = domain.Address("0x0000000000000000000000000000000000000b0b")
)

var (
	mockCtx = mock.AnythingOfType("ctx.Ctx")
	t0      = time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	oneEth  = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

type response struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type handlerSuite struct {
	suite.Suite

	e      *echo.Echo
	ledger *mocks.Usecase
}

func (s *handlerSuite) SetupTest() {
	auth := &dmocks.AuthUsecase{}
	auth.On("ParseToken", mockCtx, "alice").Return(string(alice), nil)
	auth.On("ParseToken", mockCtx, "bob").Return(string(bob), nil)
	auth.On("ParseToken", mockCtx, mock.Anything).Return("", errors.New("token is malformed"))

	s.ledger = &mocks.Usecase{}
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(playground.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, s.ledger, authMiddleware.New(auth))
}

func (s *handlerSuite) do(method, path, token, body string) (int, *response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	res := &response{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), res), rec.Body.String())
	return rec.Code, res
}

func (s *handlerSuite) listing() *ledger.Listing {
	return &ledger.Listing{
		TokenId:    1,
		Owner:      alice,
		Seller:     alice,
		Creator:    alice,
		Price:      oneEth,
		TokenURI:   "ipfs://token/1",
		Active:     true,
		DateListed: t0,
	}
}

func (s *handlerSuite) TestCreateToken() {
	s.ledger.On("CreateToken", mockCtx, alice, "ipfs://token/1", oneEth).Return(s.listing(), nil).Once()

	code, res := s.do(http.MethodPost, "/tokens", "alice", `{"tokenURI":"ipfs://token/1","price":"1000000000000000000"}`)
	s.Equal(http.StatusCreated, code)
	s.Equal("success", res.Status)

	var l listingResp
	s.NoError(json.Unmarshal(res.Data, &l))
	s.Equal(domain.TokenId(1), l.TokenId)
	s.Equal("1000000000000000000", l.Price)
	s.Equal("1", l.PriceEther)
	s.Equal(alice, l.Creator)
}

func (s *handlerSuite) TestCreateTokenRejectsBadRequests() {
	cases := []struct {
		desc   string
		token  string
		body   string
		status int
	}{
		{"no token", "", `{"tokenURI":"u","price":"1"}`, http.StatusUnauthorized},
		{"bad token", "mallory", `{"tokenURI":"u","price":"1"}`, http.StatusUnauthorized},
		{"missing uri", "alice", `{"price":"1"}`, http.StatusBadRequest},
		{"decimal price", "alice", `{"tokenURI":"u","price":"1.5"}`, http.StatusBadRequest},
		{"zero price", "alice", `{"tokenURI":"u","price":"0"}`, http.StatusBadRequest},
		{"negative price", "alice", `{"tokenURI":"u","price":"-1"}`, http.StatusBadRequest},
		{"oversized price", "alice", `{"tokenURI":"u","price":"` + strings.Repeat("9", domain.MaxAmountDigits+1) + `"}`, http.StatusBadRequest},
	}
	for _, c := range cases {
		code, res := s.do(http.MethodPost, "/tokens", c.token, c.body)
		s.Equal(c.status, code, c.desc)
		s.Equal("fail", res.Status, c.desc)
	}
	s.ledger.AssertNotCalled(s.T(), "CreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestErrorMapping() {
	s.ledger.On("TradeNFT", mockCtx, bob, alice, domain.TokenId(1)).Return(nil, ledger.ErrNotOwner).Once()
	s.ledger.On("TradeNFT", mockCtx, alice, bob, domain.TokenId(2)).Return(nil, ledger.ErrTokenNotFound).Once()
	s.ledger.On("TradeNFT", mockCtx, alice, bob, domain.TokenId(3)).Return(nil, ledger.ErrAuctionActive).Once()

	code, res := s.do(http.MethodPost, "/tokens/1/trade", "bob", `{"to":"`+string(alice)+`"}`)
	s.Equal(http.StatusForbidden, code)
	s.JSONEq(`"`+ledger.ErrNotOwner.Error()+`"`, string(res.Data))

	code, _ = s.do(http.MethodPost, "/tokens/2/trade", "alice", `{"to":"`+string(bob)+`"}`)
	s.Equal(http.StatusNotFound, code)

	code, _ = s.do(http.MethodPost, "/tokens/3/trade", "alice", `{"to":"`+string(bob)+`"}`)
	s.Equal(http.StatusConflict, code)

	code, _ = s.do(http.MethodPost, "/tokens/abc/trade", "alice", `{"to":"`+string(bob)+`"}`)
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/tokens/1/trade", "alice", `{"to":"0x1234"}`)
	s.Equal(http.StatusBadRequest, code)
}

func (s *handlerSuite) TestSellNFT() {
	split := ledger.FeeConfig{ListingFeePercent: 20, RoyaltyPercent: 5}.Split(oneEth)
	s.ledger.On("SellNFT", mockCtx, bob, domain.TokenId(1), oneEth).Return(&ledger.Settlement{
		TokenId:          1,
		Buyer:            bob,
		Seller:           alice,
		Creator:          alice,
		MarketplaceOwner: alice,
		Split:            split,
	}, nil).Once()
	s.ledger.On("SellNFT", mockCtx, bob, domain.TokenId(2), oneEth).Return(nil, ledger.ErrPaymentMismatch).Once()

	code, res := s.do(http.MethodPost, "/tokens/1/buy", "bob", `{"payment":"1000000000000000000"}`)
	s.Equal(http.StatusOK, code)
	var st settlementResp
	s.NoError(json.Unmarshal(res.Data, &st))
	s.Equal("50000000000000000", st.Split.Royalty)
	s.Equal("200000000000000000", st.Split.ListingFee)
	s.Equal("750000000000000000", st.Split.SellerProceeds)

	code, _ = s.do(http.MethodPost, "/tokens/2/buy", "bob", `{"payment":"1000000000000000000"}`)
	s.Equal(http.StatusBadRequest, code)
}

func (s *handlerSuite) TestAuctionFlow() {
	a := &ledger.Auction{
		Id:         1,
		TokenId:    1,
		Seller:     alice,
		HighestBid: new(big.Int),
		StartTime:  t0,
		EndTime:    t0.Add(time.Hour),
		Active:     true,
	}
	s.ledger.On("AuctionNFT", mockCtx, alice, domain.TokenId(1), time.Hour).Return(a, nil).Once()
	s.ledger.On("Bid", mockCtx, bob, domain.TokenId(1), oneEth).Return(nil, ledger.ErrBidAfterEnd).Once()
	s.ledger.On("FinalizeAuction", mockCtx, bob, domain.TokenId(1)).Return(nil, ledger.ErrAuctionNotEnded).Once()
	s.ledger.On("FinalizeAuction", mockCtx, alice, domain.TokenId(1)).Return(&ledger.AuctionResult{Auction: a}, nil).Once()
	s.ledger.On("GetAuction", mockCtx, domain.TokenId(1)).Return(a, nil).Once()

	code, res := s.do(http.MethodPost, "/tokens/1/auction", "alice", `{"durationSeconds":3600}`)
	s.Equal(http.StatusCreated, code)
	var ar auctionResp
	s.NoError(json.Unmarshal(res.Data, &ar))
	s.Equal("0", ar.HighestBid)
	s.True(t0.Add(time.Hour).Equal(ar.EndTime))

	code, _ = s.do(http.MethodPost, "/tokens/1/auction", "alice", `{"durationSeconds":0}`)
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/tokens/1/bids", "bob", `{"amount":"1000000000000000000"}`)
	s.Equal(http.StatusConflict, code)

	code, _ = s.do(http.MethodPost, "/tokens/1/finalize", "bob", "")
	s.Equal(http.StatusConflict, code)

	code, res = s.do(http.MethodPost, "/tokens/1/finalize", "alice", "")
	s.Equal(http.StatusOK, code)
	s.NotContains(string(res.Data), "settlement")

	code, _ = s.do(http.MethodGet, "/tokens/1/auction", "", "")
	s.Equal(http.StatusOK, code)
}

func (s *handlerSuite) TestQueries() {
	s.ledger.On("GetAllListedNFTs", mockCtx).Return([]*ledger.Listing{s.listing()}, nil).Once()
	s.ledger.On("GetMyNFTs", mockCtx, bob).Return([]*ledger.Listing{}, nil).Once()
	s.ledger.On("GetNFTListing", mockCtx, domain.TokenId(9)).Return(nil, ledger.ErrTokenNotFound).Once()
	s.ledger.On("GetAuctionedNFTs", mockCtx).Return([]*ledger.AuctionedNFT{}, nil).Once()

	code, res := s.do(http.MethodGet, "/tokens", "", "")
	s.Equal(http.StatusOK, code)
	var ls []*listingResp
	s.NoError(json.Unmarshal(res.Data, &ls))
	s.Len(ls, 1)

	code, res = s.do(http.MethodGet, "/tokens/mine", "bob", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`[]`, string(res.Data))

	code, _ = s.do(http.MethodGet, "/tokens/mine", "", "")
	s.Equal(http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodGet, "/tokens/9", "", "")
	s.Equal(http.StatusNotFound, code)

	code, res = s.do(http.MethodGet, "/auctions", "", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`[]`, string(res.Data))
}

func (s *handlerSuite) TestFees() {
	s.ledger.On("GetFeeConfig", mockCtx).Return(&ledger.FeeConfig{ListingFeePercent: 20, RoyaltyPercent: 5}, nil).Once()
	s.ledger.On("MarketplaceOwner").Return(alice)
	s.ledger.On("UpdateListingFeePercent", mockCtx, bob, 10).Return(nil, ledger.ErrNotMarketplaceOwner).Once()
	s.ledger.On("UpdateListingFeePercent", mockCtx, alice, 10).Return(&ledger.FeeConfig{ListingFeePercent: 10, RoyaltyPercent: 5}, nil).Once()
	s.ledger.On("UpdateRoyaltyPercent", mockCtx, alice, 0).Return(&ledger.FeeConfig{ListingFeePercent: 10}, nil).Once()

	code, res := s.do(http.MethodGet, "/config/fees", "", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"listingFeePercent":20,"royaltyPercent":5,"marketplaceOwner":"`+string(alice)+`"}`, string(res.Data))

	code, _ = s.do(http.MethodPut, "/config/fees/listing", "bob", `{"percent":10}`)
	s.Equal(http.StatusForbidden, code)

	code, res = s.do(http.MethodPut, "/config/fees/listing", "alice", `{"percent":10}`)
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"listingFeePercent":10,"royaltyPercent":5}`, string(res.Data))

	code, _ = s.do(http.MethodPut, "/config/fees/royalty", "alice", `{"percent":0}`)
	s.Equal(http.StatusOK, code)

	code, _ = s.do(http.MethodPut, "/config/fees/royalty", "alice", `{}`)
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPut, "/config/fees/royalty", "alice", `{"percent":101}`)
	s.Equal(http.StatusBadRequest, code)
}

func (s *handlerSuite) TestBalances() {
	s.ledger.On("BalanceOf", mockCtx, alice).Return(big.NewInt(750000000000000000), nil).Once()
	s.ledger.On("Withdraw", mockCtx, bob).Return(nil, ledger.ErrNothingToWithdraw).Once()
	s.ledger.On("Withdraw", mockCtx, alice).Return(big.NewInt(750000000000000000), nil).Once()

	code, res := s.do(http.MethodGet, "/balances/"+string(alice), "", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"address":"`+string(alice)+`","balance":"750000000000000000","balanceEther":"0.75"}`, string(res.Data))

	code, _ = s.do(http.MethodGet, "/balances/0x1234", "", "")
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/balances/withdraw", "bob", "")
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/balances/withdraw", "alice", "")
	s.Equal(http.StatusOK, code)
}

func (s *handlerSuite) TestFindEvents() {
	var got []ledger.FindEventOptions
	events := func(c ctx.Ctx, opts ...ledger.FindEventOptions) []*ledger.Event {
		got = opts
		return []*ledger.Event{{Id: "e", Seq: 3, Type: ledger.EventTypeSale, TokenId: 1, From: alice, To: bob, Amount: oneEth, Time: t0}}
	}
	s.ledger.On("FindEvents", mockCtx, mock.Anything).Return(events, nil).Once()
	s.ledger.On("FindEvents", mockCtx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(events, nil).Once()

	code, res := s.do(http.MethodGet, "/events", "", "")
	s.Equal(http.StatusOK, code)
	s.Len(got, 1)
	opts, err := ledger.GetFindEventOptions(got...)
	s.NoError(err)
	s.Equal(0, *opts.Offset)
	s.Equal(defaultEventLimit, *opts.Limit)

	var es []*eventResp
	s.NoError(json.Unmarshal(res.Data, &es))
	s.Len(es, 1)
	s.Equal("1000000000000000000", es[0].Amount)
	s.Equal("1", es[0].AmountEther)

	code, _ = s.do(http.MethodGet, "/events?offset=5&limit=10&account="+string(bob)+"&tokenId=1&types=sale,transfer&seqGt=2", "", "")
	s.Equal(http.StatusOK, code)
	s.Len(got, 5)
	opts, err = ledger.GetFindEventOptions(got...)
	s.NoError(err)
	s.Equal(5, *opts.Offset)
	s.Equal(10, *opts.Limit)
	s.Equal(bob, *opts.Account)
	s.Equal(domain.TokenId(1), *opts.TokenId)
	s.Equal([]ledger.EventType{ledger.EventTypeSale, ledger.EventTypeTransfer}, opts.Types)
	s.Equal(uint64(2), *opts.SeqGT)

	for _, q := range []string{"limit=0", "limit=5000", "offset=x", "account=0x12"} {
		code, _ = s.do(http.MethodGet, "/events?"+q, "", "")
		s.Equal(http.StatusBadRequest, code, q)
	}
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}
