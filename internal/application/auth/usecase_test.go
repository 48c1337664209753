package auth

import (
	"testing"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byEmail, u.Email)
	delete(r.byID, id)
	return nil
}

const testSecret = "secreto-de-prueba-muy-largo"

func seedUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	now := time.Now()
	return &entity.User{
		ID:           "user-1",
		Name:         "Ana",
		Email:        "ana@ejemplo.com",
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestLogin(t *testing.T) {
	user := seedUser(t, "clave-segura")
	uc := NewAuthUseCase(newFakeUserRepo(user), JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "catalogo-api"})

	out, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "clave-segura"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "user-1", out.User.ID)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// El token lleva el id y el rol del usuario
	userID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

// Email desconocido y password incorrecto devuelven exactamente el mismo
// error: la respuesta no revela cuál de las dos verificaciones falló.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	user := seedUser(t, "clave-segura")
	uc := NewAuthUseCase(newFakeUserRepo(user), JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "catalogo-api"})

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "clave-segura"})
	_, errWrongPass := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "otra-clave"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestCurrentUser(t *testing.T) {
	user := seedUser(t, "clave-segura")
	repo := newFakeUserRepo(user)
	uc := NewAuthUseCase(repo, JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "catalogo-api"})

	out, err := uc.CurrentUser("user-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "ana@ejemplo.com", out.Email)

	// Cuenta eliminada después de emitir el token
	require.NoError(t, repo.Delete("user-1"))
	gone, err := uc.CurrentUser("user-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	h1, err := HashPassword("misma-clave")
	require.NoError(t, err)
	h2, err := HashPassword("misma-clave")
	require.NoError(t, err)
	// bcrypt genera salt por password
	assert.NotEqual(t, h1, h2)
}
