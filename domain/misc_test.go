package domain

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressIsZero(t *testing.T) {
	cases := []struct {
		desc string
		addr Address
		res  bool
	}{
		{desc: "empty", addr: "", res: true},
		{desc: "null address", addr: EmptyAddress, res: true},
		{desc: "upper case null address", addr: Address("0X0000000000000000000000000000000000000000"), res: true},
		{desc: "normal", addr: Address("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"), res: false},
	}

	for _, c := range cases {
		assert.Equal(t, c.res, c.addr.IsZero(), c.desc)
	}
}

func TestAddressEquals(t *testing.T) {
	assert.True(t, Address("0xABC").Equals("0xabc"))
	assert.False(t, Address("0xabc").Equals("0xabd"))
}

func TestParseTokenId(t *testing.T) {
	cases := []struct {
		desc string
		in   string
		id   TokenId
		err  error
	}{
		{desc: "valid", in: "12", id: 12},
		{desc: "zero", in: "0", err: ErrInvalidArgument},
		{desc: "negative", in: "-1", err: ErrInvalidArgument},
		{desc: "not a number", in: "abc", err: ErrInvalidArgument},
	}

	for _, c := range cases {
		id, err := ParseTokenId(c.in)
		if c.err != nil {
			assert.True(t, errors.Is(err, c.err), c.desc)
			continue
		}
		assert.NoError(t, err, c.desc)
		assert.Equal(t, c.id, id, c.desc)
		assert.Equal(t, c.in, id.String(), c.desc)
	}
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("1000000000000000000")
	assert.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)))

	_, err = ParseAmount("1.5")
	assert.ErrorIs(t, err, ErrInvalidNumberFormat)

	_, err = ParseAmount(strings.Repeat("1", MaxAmountDigits+1))
	assert.ErrorIs(t, err, ErrInvalidNumberFormat)
}
