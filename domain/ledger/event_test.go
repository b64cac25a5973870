package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/ledger/domain"
)

func TestFindEventOptionsMatch(t *testing.T) {
	alice := domain.Address("0xa11ce00000000000000000000000000000000001")
	bob := domain.Address("0xb0b0000000000000000000000000000000000002")

	e := &Event{Seq: 5, Type: EventTypeSale, TokenId: 3, From: alice, To: bob}

	cases := []struct {
		desc  string
		opts  []FindEventOptions
		match bool
	}{
		{desc: "no filter", match: true},
		{desc: "account as receiver", opts: []FindEventOptions{EventWithAccount("0xB0B0000000000000000000000000000000000002")}, match: true},
		{desc: "other account", opts: []FindEventOptions{EventWithAccount(domain.EmptyAddress)}, match: false},
		{desc: "token", opts: []FindEventOptions{EventWithTokenId(3)}, match: true},
		{desc: "other token", opts: []FindEventOptions{EventWithTokenId(4)}, match: false},
		{desc: "types", opts: []FindEventOptions{EventWithTypes(EventTypeMint, EventTypeSale)}, match: true},
		{desc: "other types", opts: []FindEventOptions{EventWithTypes(EventTypeMint)}, match: false},
		{desc: "seq after", opts: []FindEventOptions{EventWithSeqGT(4)}, match: true},
		{desc: "seq before", opts: []FindEventOptions{EventWithSeqGT(5)}, match: false},
	}

	for _, c := range cases {
		opts, err := GetFindEventOptions(c.opts...)
		assert.NoError(t, err, c.desc)
		assert.Equal(t, c.match, opts.Match(e), c.desc)
	}
}

func TestFindEventOptionsInvalid(t *testing.T) {
	_, err := GetFindEventOptions(EventWithTypes("unknown"))
	assert.Equal(t, domain.ErrBadParamInput, err)

	_, err = GetFindEventOptions(EventWithPagination(-1, 10))
	assert.Equal(t, domain.ErrBadParamInput, err)
}
