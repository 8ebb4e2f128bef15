package users

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"reading-prefs-go/internal/common"
	"reading-prefs-go/internal/logging"
	"reading-prefs-go/internal/models"
)

// memRepo mimics the unique index on users.email.
type memRepo struct {
	mu      sync.Mutex
	byEmail map[string]models.User

	createErr error
	findErr   error
}

func newMemRepo() *memRepo {
	return &memRepo{byEmail: map[string]models.User{}}
}

func (m *memRepo) Create(_ context.Context, u *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return common.ErrDuplicateIdentity
	}
	m.byEmail[u.Email] = *u
	return nil
}

func (m *memRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, logging.Discard())
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "  Ada ", "Ada@Example.com ", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "ada@example.com", u.Email)

	got, err := svc.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = svc.Login(ctx, " ADA@example.COM", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestRegister_HashIsSaltedAndNeverPlaintext(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	a, err := svc.Register(ctx, "", "a@example.com", "samepass")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "", "b@example.com", "samepass")
	require.NoError(t, err)
	assert.Empty(t, a.PasswordHash)

	hashA := repo.byEmail["a@example.com"].PasswordHash
	hashB := repo.byEmail["b@example.com"].PasswordHash
	assert.NotEqual(t, "samepass", hashA)
	assert.NotContains(t, hashA, "samepass")
	assert.NotEqual(t, hashA, hashB)

	cost, err := bcrypt.Cost([]byte(hashA))
	require.NoError(t, err)
	assert.Equal(t, HashCost, cost)
}

func TestRegister_DuplicateNormalizedEmail(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "dup@example.com", "secret1")
	require.NoError(t, err)

	for _, variant := range []string{"dup@example.com", "DUP@example.com", "  dup@Example.Com\t"} {
		_, err := svc.Register(ctx, "", variant, "another1")
		assert.True(t, errors.Is(err, common.ErrDuplicateIdentity), variant)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	tests := []struct {
		name, email, password string
	}{
		{"missing email", "", "secret1"},
		{"blank email", "   ", "secret1"},
		{"missing password", "x@example.com", ""},
		{"short password", "x@example.com", "12345"},
		{"too long for bcrypt", "x@example.com", strings.Repeat("p", 73)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, "", tc.email, tc.password)
			assert.True(t, errors.Is(err, common.ErrValidation), "got %v", err)
		})
	}
}

func TestRegister_MinimumLengthCountsCharacters(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.Register(context.Background(), "", "six@example.com", "123456")
	assert.NoError(t, err)
}

func TestRegister_StoreErrorIsWrapped(t *testing.T) {
	repo := newMemRepo()
	repo.createErr = errors.New("boom")
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "", "x@example.com", "secret1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrDuplicateIdentity))
	assert.Contains(t, err.Error(), "boom")
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "known@example.com", "secret1")
	require.NoError(t, err)

	_, wrongPass := svc.Login(ctx, "known@example.com", "wrong-pass")
	_, unknown := svc.Login(ctx, "nobody@example.com", "secret1")

	assert.True(t, errors.Is(wrongPass, common.ErrAuthFailure))
	assert.True(t, errors.Is(unknown, common.ErrAuthFailure))
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.Login(context.Background(), "", "x")
	assert.True(t, errors.Is(err, common.ErrValidation))
	_, err = svc.Login(context.Background(), "x@example.com", "")
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestLogin_StoreErrorIsNotAuthFailure(t *testing.T) {
	repo := newMemRepo()
	repo.findErr = errors.New("conn reset")
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), "x@example.com", "secret1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrAuthFailure))
}
