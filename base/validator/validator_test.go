package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/domain"
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
			desc:       "valid address - real address",
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

func (s *ValidatorTestSuite) TestIsValidPrice() {
	s.True(IsValidPrice("0.001"))
	s.True(IsValidPrice("12"))
	s.False(IsValidPrice("0"))
	s.False(IsValidPrice("-1"))
	s.False(IsValidPrice("0.0000000000000000001"))
	s.False(IsValidPrice("one"))
}

type resellForm struct {
	Price  string `validate:"required,price"`
	Seller string `validate:"omitempty,address"`
}

func (s *ValidatorTestSuite) TestCustomValidator() {
	v := NewCustomValidator(New())
	s.NoError(v.Validate(&resellForm{Price: "0.5"}))
	s.NoError(v.Validate(&resellForm{Price: "0.5", Seller: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"}))

	err := v.Validate(&resellForm{Price: "-0.5"})
	s.Error(err)
	s.True(errors.Is(err, domain.ErrBadParamInput))

	s.Error(v.Validate(&resellForm{Price: "1", Seller: "0x01"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
