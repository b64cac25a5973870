package ledger

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/ledger/domain"
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func TestFeeConfigSplit(t *testing.T) {
	cases := []struct {
		desc     string
		fees     FeeConfig
		price    *big.Int
		royalty  *big.Int
		fee      *big.Int
		proceeds *big.Int
	}{
		{
			desc:     "one ether, royalty 5, fee 20",
			fees:     FeeConfig{ListingFeePercent: 20, RoyaltyPercent: 5},
			price:    ether(1),
			royalty:  big.NewInt(50000000000000000),
			fee:      big.NewInt(200000000000000000),
			proceeds: big.NewInt(750000000000000000),
		},
		{
			desc:     "truncates toward zero",
			fees:     FeeConfig{ListingFeePercent: 3, RoyaltyPercent: 7},
			price:    big.NewInt(99),
			royalty:  big.NewInt(6),
			fee:      big.NewInt(2),
			proceeds: big.NewInt(91),
		},
		{
			desc:     "no fees",
			fees:     FeeConfig{},
			price:    big.NewInt(10),
			royalty:  big.NewInt(0),
			fee:      big.NewInt(0),
			proceeds: big.NewInt(10),
		},
		{
			desc:     "everything to fees",
			fees:     FeeConfig{ListingFeePercent: 60, RoyaltyPercent: 40},
			price:    big.NewInt(1),
			royalty:  big.NewInt(0),
			fee:      big.NewInt(0),
			proceeds: big.NewInt(1),
		},
	}

	for _, c := range cases {
		s := c.fees.Split(c.price)
		assert.Equal(t, 0, c.royalty.Cmp(s.Royalty), c.desc)
		assert.Equal(t, 0, c.fee.Cmp(s.ListingFee), c.desc)
		assert.Equal(t, 0, c.proceeds.Cmp(s.SellerProceeds), c.desc)

		sum := new(big.Int).Add(s.Royalty, s.ListingFee)
		sum.Add(sum, s.SellerProceeds)
		assert.Equal(t, 0, sum.Cmp(c.price), c.desc)
	}
}

func TestFeeConfigSplitSumsToPrice(t *testing.T) {
	for _, fees := range []FeeConfig{{1, 1}, {2, 3}, {13, 17}, {33, 33}, {50, 50}} {
		for p := int64(1); p < 500; p += 7 {
			s := fees.Split(big.NewInt(p))
			sum := new(big.Int).Add(s.Royalty, s.ListingFee)
			sum.Add(sum, s.SellerProceeds)
			assert.Equal(t, p, sum.Int64())
			assert.True(t, s.SellerProceeds.Sign() >= 0)
		}
	}
}

func TestFeeConfigValidate(t *testing.T) {
	cases := []struct {
		desc string
		fees FeeConfig
		ok   bool
	}{
		{desc: "zero", fees: FeeConfig{}, ok: true},
		{desc: "max", fees: FeeConfig{ListingFeePercent: 100}, ok: true},
		{desc: "negative", fees: FeeConfig{RoyaltyPercent: -1}},
		{desc: "over 100", fees: FeeConfig{ListingFeePercent: 101}},
		{desc: "sum over 100", fees: FeeConfig{ListingFeePercent: 60, RoyaltyPercent: 41}},
	}

	for _, c := range cases {
		err := c.fees.Validate()
		if c.ok {
			assert.NoError(t, err, c.desc)
		} else {
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument), c.desc)
		}
	}
}
