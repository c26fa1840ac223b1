//go:build unit

package user_test

import (
	"strings"
	"testing"

	"parkhub/internal/domain/user"
	"parkhub/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		username, _ := user.NewUsername("frank")
		email, _ := user.NewEmail("frank@example.com")
		expected := user.NewUser(username, actual.PasswordHash(), &email, user.RoleUser)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.IsAdmin())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length username",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("abc") },
			},
			{
				name:   "maximum length username",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", 80)) },
			},
			{
				name:   "too short username",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "too long username",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", 81)) },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("password validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length password",
				mutate: func(b *builder.UserBuilder) { b.WithPassword("12345678") },
			},
			{
				name:   "too short password",
				mutate: func(b *builder.UserBuilder) { b.WithPassword("1234567") },
				errIs:  user.ErrPasswordTooWeak,
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "missing email is allowed",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("not-an-email") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("superuser") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
