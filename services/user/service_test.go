package user

import (
	"testing"
	"time"

	"policygen/database/storage"
	"policygen/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepo is an in-memory UserRepository for service tests.
type memoryUserRepo struct {
	users map[string]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*models.User)}
}

func (r *memoryUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return storage.ErrDuplicateKey
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *memoryUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *memoryUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	u, ok := r.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	for key, value := range updateDoc {
		switch key {
		case "name":
			u.Name = value.(string)
		case "email":
			u.Email = value.(string)
		case "password_hash":
			u.PasswordHash = value.(string)
		case "token_hash":
			u.TokenHash = value.(string)
		case "last_login":
			u.LastLogin = value.(time.Time)
		case "updated_at":
			u.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (r *memoryUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func validRegistration() RegistrationRequest {
	return RegistrationRequest{
		Username: "johndoe",
		Password: "correct-horse",
		Name:     "John Doe",
		Email:    "john@example.com",
	}
}

func TestRegisterUserHashesPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	created, err := svc.RegisterUser(validRegistration())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "johndoe", created.Username)
	assert.NotEqual(t, "correct-horse", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))
}

func TestRegisterUserNormalizesIdentifiers(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	req := validRegistration()
	req.Username = "  JohnDoe "
	req.Email = " John@Example.com"

	created, err := svc.RegisterUser(req)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", created.Username)
	assert.Equal(t, "john@example.com", created.Email)
}

func TestRegisterUserPropagatesDuplicateKey(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.RegisterUser(validRegistration())
	require.NoError(t, err)

	_, err = svc.RegisterUser(validRegistration())
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestRegisterUserRequiresAllFields(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	req := validRegistration()
	req.Name = ""

	_, err := svc.RegisterUser(req)
	assert.Error(t, err)
}

func TestUpdateProfileRequiresCurrentPasswordForChange(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	created, err := svc.RegisterUser(validRegistration())
	require.NoError(t, err)

	_, err = svc.UpdateProfile(created.ID, ProfileUpdateRequest{
		Name:            "John D.",
		Email:           "john@example.com",
		CurrentPassword: "wrong",
		NewPassword:     "new-password-123",
	})
	assert.Error(t, err)

	updated, err := svc.UpdateProfile(created.ID, ProfileUpdateRequest{
		Name:            "John D.",
		Email:           "john@example.com",
		CurrentPassword: "correct-horse",
		NewPassword:     "new-password-123",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password-123")))
}

func TestUpdateProfileWithoutPasswordChange(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	created, err := svc.RegisterUser(validRegistration())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(created.ID, ProfileUpdateRequest{
		Name:  "John D.",
		Email: "johnny@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "John D.", updated.Name)
	assert.Equal(t, "johnny@example.com", updated.Email)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
}
