package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Mode", "is invalid")
	ve.AddFieldError("SuggestionCount", "must be between 3 and 5")

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "Mode: is invalid")
	s.Assert().Contains(ve.Error(), "SuggestionCount: must be between 3 and 5")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("Mode", "must be auto or manual").
		RequiredField("Engine").
		Fieldf("ChaosLevel", "must be at most %d", 1)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationErrorOrdersFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Skills", "is required")
	ve.AddFieldError("Dice", "is required")
	ve.AddFieldError("Engine", "is required")

	s.Assert().Equal("validation failed: Dice: is required; Engine: is required; Skills: is required", ve.Error())
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestHelpers() {
	testCases := []struct {
		name    string
		apply   func(vb *errors.ValidationBuilder)
		wantErr bool
	}{
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("ID", "  ", vb) }, true},
		{"required set", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("ID", "x", vb) }, false},
		{"range low", func(vb *errors.ValidationBuilder) { errors.ValidateRange("Count", 2, 3, 5, vb) }, true},
		{"range ok", func(vb *errors.ValidationBuilder) { errors.ValidateRange("Count", 4, 3, 5, vb) }, false},
		{"float high", func(vb *errors.ValidationBuilder) { errors.ValidateFloatRange("Chaos", 1.2, 0, 1, vb) }, true},
		{"float edge", func(vb *errors.ValidationBuilder) { errors.ValidateFloatRange("Chaos", 1, 0, 1, vb) }, false},
		{"min", func(vb *errors.ValidationBuilder) { errors.ValidateMin("Turns", 0, 1, vb) }, true},
		{"enum bad", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("Mode", "sometimes", []string{"auto", "manual"}, vb) }, true},
		{"enum ok", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("Mode", "auto", []string{"auto", "manual"}, vb) }, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.wantErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}
