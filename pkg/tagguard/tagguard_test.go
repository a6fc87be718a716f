package tagguard_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard"
	"github.com/dmitrymomot/guard/pkg/tagguard"
)

type signup struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Age      int    `validate:"gte=13,lte=130"`
}

func TestInvalid(t *testing.T) {
	t.Parallel()

	t.Run("passes valid value unchanged", func(t *testing.T) {
		got, err := tagguard.Invalid(guard.Against, "john@example.com", "email", "required,email")
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", got)
	})

	t.Run("reports the first failing rule", func(t *testing.T) {
		_, err := tagguard.Invalid(guard.Against, "", "email", "required,email")
		require.Error(t, err)

		var aerr *guard.ArgumentError
		require.ErrorAs(t, err, &aerr)
		assert.Equal(t, "email", aerr.Param)
		assert.Equal(t, "Value failed the 'required' rule.", aerr.Message)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 1)
	})

	t.Run("works with numbers", func(t *testing.T) {
		_, err := tagguard.Invalid(guard.Against, 64, "size", "min=1,max=32")
		require.Error(t, err)
		assert.Equal(t, "size: Value failed the 'max' rule.", err.Error())

		got, err := tagguard.Invalid(guard.Against, 16, "size", "min=1,max=32")
		require.NoError(t, err)
		assert.Equal(t, 16, got)
	})

	t.Run("uses custom message", func(t *testing.T) {
		_, err := tagguard.Invalid(guard.Against, "nope", "email", "email", guard.WithMessage("email is malformed"))
		require.Error(t, err)
		assert.Equal(t, "email: email is malformed", err.Error())
	})

	t.Run("unknown tag is a usage error", func(t *testing.T) {
		_, err := tagguard.Invalid(guard.Against, "x", "v", "definitely_not_a_tag")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidUsage)
		assert.False(t, guard.IsFailure(err))
	})

	t.Run("empty tag is a usage error", func(t *testing.T) {
		_, err := tagguard.Invalid(guard.Against, "x", "v", " ")
		assert.ErrorIs(t, err, guard.ErrInvalidUsage)
	})
}

func TestInvalidStruct(t *testing.T) {
	t.Parallel()

	t.Run("passes valid struct unchanged", func(t *testing.T) {
		in := signup{Email: "john@example.com", Password: "s3cr3t-pass", Age: 30}
		got, err := tagguard.InvalidStruct(guard.Against, in, "req")
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("accepts pointer to struct", func(t *testing.T) {
		in := &signup{Email: "john@example.com", Password: "s3cr3t-pass", Age: 30}
		got, err := tagguard.InvalidStruct(guard.Against, in, "req")
		require.NoError(t, err)
		assert.Same(t, in, got)
	})

	t.Run("names the first failing field", func(t *testing.T) {
		in := signup{Email: "john@example.com", Password: "short", Age: 30}
		_, err := tagguard.InvalidStruct(guard.Against, in, "req")
		require.Error(t, err)
		assert.Equal(t, "req: Field 'signup.Password' failed the 'min' rule.", err.Error())
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("non-struct input is a usage error", func(t *testing.T) {
		_, err := tagguard.InvalidStruct(guard.Against, 42, "req")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidUsage)
	})

	t.Run("nil pointer is a usage error", func(t *testing.T) {
		var in *signup
		_, err := tagguard.InvalidStruct(guard.Against, in, "req")
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrInvalidUsage)
	})
}
