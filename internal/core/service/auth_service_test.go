package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

type stubAuthRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	next  int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// Create mimics the database uniqueness constraint: the mutex makes the
// exists-check and insert atomic, as the real UNIQUE index does.
func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.next++
	created := cloneUser(user)
	created.ID = r.next
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func newTestAuthService(repo *stubAuthRepo) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, bcrypt.MinCost, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "pass123", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingCredentials(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo())

	if _, err := svc.Register(context.Background(), "", "pass", ""); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", ""); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "bob", "pass", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), "race", "pass", "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var created, conflicts int
	for err := range errs {
		switch err {
		case nil:
			created++
		case domain.ErrUserExists:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if created != 1 || conflicts != attempts-1 {
		t.Fatalf("expected 1 success and %d conflicts, got %d/%d", attempts-1, created, conflicts)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.users))
	}
}

// A caller may self-assign any role, including admin. This mirrors the system
// being replaced; the test pins the behavior so a future fix is a conscious
// decision rather than an accident.
func TestAuthService_Register_CallerSuppliedRole(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo())

	user, err := svc.Register(context.Background(), "mallory", "pass", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected caller-supplied role to be stored, got %q", user.Role)
	}
}

func TestAuthService_Register_SaltedHashes(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo())

	u1, err := svc.Register(context.Background(), "carol", "samepass", "")
	if err != nil {
		t.Fatalf("register carol: %v", err)
	}
	u2, err := svc.Register(context.Background(), "dave", "samepass", "")
	if err != nil {
		t.Fatalf("register dave: %v", err)
	}
	if u1.PasswordHash == u2.PasswordHash {
		t.Fatalf("expected different digests for the same password")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "erin", "s3cret", domain.RoleEditor); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "erin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "erin" || user.Role != domain.RoleEditor {
		t.Fatalf("unexpected user: %+v", user)
	}

	identity, err := NewTokenService("secret", time.Hour).Validate(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if identity.Username != "erin" || identity.Role != domain.RoleEditor {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo())

	if _, err := svc.Register(context.Background(), "frank", "goodpass", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "frank", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Unknown user and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo())

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
