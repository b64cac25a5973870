package validator

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952z",
			expIsValid: false,
		},
		{
			desc:       "valid address - checksum",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidAmount() {
	tests := []struct {
		desc    string
		amount  string
		isValid bool
	}{
		{desc: "one ether", amount: "1000000000000000000", isValid: true},
		{desc: "zero", amount: "0", isValid: false},
		{desc: "negative", amount: "-5", isValid: false},
		{desc: "decimal", amount: "1.5", isValid: false},
		{desc: "empty", amount: "", isValid: false},
		{desc: "78 digits", amount: strings.Repeat("9", 78), isValid: true},
		{desc: "79 digits", amount: strings.Repeat("9", 79), isValid: false},
	}
	for _, t := range tests {
		s.Equal(t.isValid, IsValidAmount(t.amount), t.desc)
	}
}

func (s *ValidatorTestSuite) TestCustomTags() {
	type params struct {
		To    string `validate:"required,address"`
		Price string `validate:"required,wei"`
	}

	v := NewCustomValidator(validator.New())

	s.NoError(v.Validate(&params{To: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", Price: "10"}))
	s.Error(v.Validate(&params{To: "0x1", Price: "10"}))
	s.Error(v.Validate(&params{To: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", Price: "0"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
