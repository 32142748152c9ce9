package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charseq/pkg/charseq"
	"github.com/dmitrymomot/charseq/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "iban",
			Message: "invalid IBAN",
		})
		assert.Equal(t, "validation failed: iban: invalid IBAN", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "iban", Message: "invalid IBAN"})
		errs.Add(validator.ValidationError{Field: "amount", Message: "must be a 64-bit integer"})

		assert.Equal(t, "validation failed: iban: invalid IBAN; amount: must be a 64-bit integer", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "card", Message: "invalid format"})
	errs.Add(validator.ValidationError{Field: "card", Message: "invalid checksum"})
	errs.Add(validator.ValidationError{Field: "iban", Message: "invalid IBAN"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("card"))
	assert.False(t, errs.Has("amount"))
	assert.Equal(t, []string{"invalid format", "invalid checksum"}, errs.Get("card"))
	assert.Nil(t, errs.Get("amount"))
	assert.Equal(t, []string{"card", "iban"}, errs.Fields())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidInt32("count", "42"),
			validator.ValidIBAN("iban", "GB82WEST12345698765432"),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failing rule with its cause", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidInt32("count", "2147483648"),
			validator.ValidInt32("ok", "1"),
			validator.ValidIBAN("iban", "GB82WEST12345698765433"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"count", "iban"}, verrs.Fields())

		assert.ErrorIs(t, verrs[0].Err, charseq.ErrRange)
		assert.ErrorIs(t, verrs[1].Err, validator.ErrInvalidValue)

		assert.ErrorIs(t, err, charseq.ErrInvalidNumber)
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
		assert.NotErrorIs(t, err, validator.ErrInvalidFormat)
	})

	t.Run("does not leak causes between rule values", func(t *testing.T) {
		rule := validator.ValidInt64("n", "x")
		_ = validator.Apply(rule)
		assert.Nil(t, rule.Error.Err)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))

	err := validator.Apply(validator.ValidUUID("id", "nope"))
	assert.NotNil(t, validator.ExtractValidationErrors(err))
	assert.True(t, validator.IsValidationError(err))
	assert.False(t, validator.IsValidationError(errors.New("other")))
	assert.False(t, validator.IsValidationError(nil))
}
