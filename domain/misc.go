package domain

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

var (
	Big100 = big.NewInt(100)
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero reports whether a is empty or the null address
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is the sequential id of a minted token, starting from 1
type TokenId uint64

func (i TokenId) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

func ParseTokenId(s string) (TokenId, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, xerrors.Errorf("invalid token id %q: %w", s, ErrInvalidArgument)
	}
	return TokenId(id), nil
}

// MaxAmountDigits is the length of the largest uint256, no wei amount is longer
const MaxAmountDigits = 78

// ParseAmount parses a base 10 wei amount
func ParseAmount(s string) (*big.Int, error) {
	if len(s) > MaxAmountDigits {
		return nil, ErrInvalidNumberFormat
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrInvalidNumberFormat
	}
	return v, nil
}
