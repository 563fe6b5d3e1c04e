package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/eduguru-api/internal/models"
	"github.com/noah-isme/eduguru-api/internal/repository"
	appErrors "github.com/noah-isme/eduguru-api/pkg/errors"
)

type fakeUserRepo struct {
	users   map[string]*models.User
	created []models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.PublicUser, error) {
	for _, user := range r.users {
		if user.ID == id {
			public := user.Public()
			return &public, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user models.User) error {
	r.users[user.Username] = &user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) PasswordHash(_ context.Context, id string) (string, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user.PasswordHash, nil
		}
	}
	return "", sql.ErrNoRows
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id string, update repository.ProfileUpdate) error {
	for _, user := range r.users {
		if user.ID != id {
			continue
		}
		if update.Name != nil {
			user.Name = *update.Name
		}
		if update.Avatar != nil {
			user.Avatar = update.Avatar
		}
		if update.PasswordHash != nil {
			user.PasswordHash = *update.PasswordHash
		}
		return nil
	}
	return sql.ErrNoRows
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(repo, nil, nil, AuthConfig{Secret: "test-secret"})
}

func TestRegisterCreatesTeacherAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Username: "bu.siti",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "bu.siti", result.User.Username)
	assert.Equal(t, "bu.siti", result.User.Name, "name defaults to username")
	assert.Equal(t, models.RoleTeacher, result.User.Role)
	require.NotNil(t, result.User.Avatar)
	assert.Contains(t, *result.User.Avatar, "ui-avatars.com")

	require.Len(t, repo.created, 1)
	assert.NotEqual(t, "rahasia123", repo.created[0].PasswordHash, "password must be hashed")
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["bu.siti"] = &models.User{ID: "user_1", Username: "bu.siti"}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "bu.siti", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "Username already exists", appErrors.FromError(err).Message)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestRegisterRequiresUsernameAndPassword(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "bu.siti"})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestLoginHidesWhichCredentialFailed(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("benar"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.users["bu.siti"] = &models.User{
		ID: "user_1", Username: "bu.siti", PasswordHash: string(hash), Role: models.RoleTeacher,
	}
	svc := newTestAuthService(repo)

	_, unknownErr := svc.Login(context.Background(), LoginRequest{Username: "tidak.ada", Password: "benar"})
	_, wrongErr := svc.Login(context.Background(), LoginRequest{Username: "bu.siti", Password: "salah"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, appErrors.FromError(unknownErr).Message, appErrors.FromError(wrongErr).Message)
	assert.Equal(t, 401, appErrors.FromError(unknownErr).Status)
}

func TestLoginIssuesValidToken(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("benar"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.users["bu.siti"] = &models.User{
		ID: "user_1", Username: "bu.siti", PasswordHash: string(hash), Role: models.RoleTeacher,
	}
	svc := newTestAuthService(repo)

	result, err := svc.Login(context.Background(), LoginRequest{Username: "bu.siti", Password: "benar"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.ID)
	assert.Equal(t, "bu.siti", claims.Username)
	assert.Equal(t, models.RoleTeacher, claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	other := NewAuthService(repo, nil, nil, AuthConfig{Secret: "different"})

	token, err := other.IssueToken("user_1", "bu.siti", models.RoleTeacher)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestUpdateProfileVerifiesCurrentPassword(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("lama"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.users["bu.siti"] = &models.User{
		ID: "user_1", Username: "bu.siti", PasswordHash: string(hash), Role: models.RoleTeacher,
	}
	svc := newTestAuthService(repo)

	_, err = svc.UpdateProfile(context.Background(), "user_1", UpdateProfileRequest{
		CurrentPassword: "salah",
		NewPassword:     "baru123",
	})
	require.Error(t, err)
	assert.Equal(t, "Current password is incorrect", appErrors.FromError(err).Message)

	_, err = svc.UpdateProfile(context.Background(), "user_1", UpdateProfileRequest{
		CurrentPassword: "lama",
		NewPassword:     "baru123",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["bu.siti"].PasswordHash), []byte("baru123")))
}

func TestOAuthFindOrCreateReusesExistingAccount(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["guru@gmail.com"] = &models.User{
		ID: "user_1", Username: "guru@gmail.com", PasswordHash: models.OAuthPasswordSentinel, Role: models.RoleTeacher,
	}
	auth := newTestAuthService(repo)
	oauth := NewOAuthService(repo, auth, nil, testOAuthConfig(), nil)

	user, err := oauth.findOrCreate(context.Background(), &oauthProfile{Email: "guru@gmail.com", Name: "Guru"})
	require.NoError(t, err)
	assert.Equal(t, "user_1", user.ID)
	assert.Empty(t, repo.created)
}

func TestOAuthFindOrCreateProvisionsNewAccount(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)
	oauth := NewOAuthService(repo, auth, nil, testOAuthConfig(), nil)

	user, err := oauth.findOrCreate(context.Background(), &oauthProfile{Email: "baru@gmail.com", Name: "Guru Baru"})
	require.NoError(t, err)
	assert.Equal(t, "baru@gmail.com", user.Username)

	require.Len(t, repo.created, 1)
	assert.Equal(t, models.OAuthPasswordSentinel, repo.created[0].PasswordHash,
		"oauth accounts must never hold a usable password")
	assert.Equal(t, models.RoleTeacher, repo.created[0].Role)
}
