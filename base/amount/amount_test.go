package amount

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEther(t *testing.T) {
	cases := []struct {
		desc string
		wei  *big.Int
		res  string
	}{
		{desc: "nil", wei: nil, res: "0"},
		{desc: "one ether", wei: big.NewInt(1000000000000000000), res: "1"},
		{desc: "royalty", wei: big.NewInt(50000000000000000), res: "0.05"},
		{desc: "one wei", wei: big.NewInt(1), res: "0.000000000000000001"},
	}

	for _, c := range cases {
		assert.Equal(t, c.res, FormatEther(c.wei), c.desc)
	}
}
