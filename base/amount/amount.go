package amount

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of wei digits in one ether
const EtherDecimals = 18

// ToEther converts a wei amount to ether
func ToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals)
}

// FormatEther renders a wei amount in ether without trailing zeros
func FormatEther(wei *big.Int) string {
	return ToEther(wei).String()
}
