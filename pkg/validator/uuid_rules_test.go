package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/charseq/pkg/charseq"
	"github.com/dmitrymomot/charseq/pkg/validator"
)

func TestValidUUID(t *testing.T) {
	t.Parallel()

	for _, v := range []string{
		uuid.NewString(),
		"BA226CF7-D156-4B18-A78A-094736208CC9",
		uuid.Nil.String(),
	} {
		assert.NoError(t, validator.Apply(validator.ValidUUID("id", v)), v)
	}

	for _, v := range []string{
		"",
		"not-a-uuid",
		"ba226cf7d1564b18a78a094736208cc9",
		"{ba226cf7-d156-4b18-a78a-094736208cc9}",
	} {
		err := validator.Apply(validator.ValidUUID("id", v))
		assert.ErrorIs(t, err, charseq.ErrInvalidUUID, v)
	}
}

func TestRequiredUUID(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.RequiredUUID("id", uuid.New())))
	assert.ErrorIs(t, validator.Apply(validator.RequiredUUID("id", uuid.Nil)), validator.ErrFieldRequired)
}

func TestValidUUIDVersion(t *testing.T) {
	t.Parallel()

	v4 := uuid.NewString()
	v5 := uuid.NewSHA1(uuid.NameSpaceDNS, []byte("example.com")).String()

	assert.NoError(t, validator.Apply(validator.ValidUUIDVersion("id", v4, 4)))
	assert.NoError(t, validator.Apply(validator.ValidUUIDVersion("id", v5, 5)))

	assert.ErrorIs(t, validator.Apply(validator.ValidUUIDVersion("id", v5, 4)), validator.ErrInvalidValue)
	assert.ErrorIs(t, validator.Apply(validator.ValidUUIDVersion("id", "nope", 4)), charseq.ErrInvalidUUID)
}
