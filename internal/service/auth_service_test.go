package service

import (
	"errors"
	"testing"
	"time"

	"portfolio_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn        func(u models.User) (int64, error)
	GetByUsernameFn func(username string) (*models.User, error)
	ExistsFn        func(username string) (bool, error)

	createCalls []models.User
	getCalls    []string
	existsCalls []string
}

func (m *mockUserRepo) Create(u models.User) (int64, error) {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) ExistsByUsername(username string) (bool, error) {
	m.existsCalls = append(m.existsCalls, username)
	return m.ExistsFn(username)
}

// --- Login tests ---

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	stored := &models.User{ID: 7, Username: "diana", PasswordHash: hash, Role: models.RoleAdmin, Active: true}

	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username != "diana" {
				t.Fatalf("expected username 'diana', got %q", username)
			}
			return stored, nil
		},
	}
	svc := NewAuthService(mock)

	resp, err := svc.Login("diana", "letmein")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected non-empty token")
	}
	if resp.Role != models.RoleAdmin || resp.Username != "diana" || resp.UserID != 7 {
		t.Fatalf("unexpected identity fields: %+v", resp)
	}

	// The token parses back to the username it was issued for.
	username, err := svc.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if username != "diana" {
		t.Fatalf("expected username 'diana' from token, got %q", username)
	}

	if len(mock.getCalls) != 1 {
		t.Fatalf("expected 1 GetByUsername call, got %d", len(mock.getCalls))
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(mock)

	_, err := svc.Login("ghost", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	correctHash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: "eve", PasswordHash: correctHash, Role: models.RoleUser}, nil
		},
	}
	svc := NewAuthService(mock)

	_, err = svc.Login("eve", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

// Unknown-user and wrong-password failures are indistinguishable, so a
// caller cannot enumerate usernames from login responses.
func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	correctHash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username == "known" {
				return &models.User{ID: 1, Username: "known", PasswordHash: correctHash}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(mock)

	_, errUnknown := svc.Login("unknown", "whatever")
	_, errWrongPw := svc.Login("known", "whatever")
	if errUnknown == nil || errWrongPw == nil {
		t.Fatalf("expected both logins to fail")
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return nil, errors.New("query failed")
		},
	}
	svc := NewAuthService(mock)

	_, err := svc.Login("john", "pw")
	if err == nil {
		t.Fatalf("expected repo error, got nil")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("store failure must not masquerade as a credential failure")
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{})
	_, err := svc.ParseToken("not-a-jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{})

	// Token signed with a different key.
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "mallory",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	badToken, err := tk.SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(badToken); err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{})

	past := time.Now().Add(-2 * time.Hour)
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "late",
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
	})
	expiredToken, err := tk.SignedString(svc.signingKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(expiredToken); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestAuthService_ParseToken_MissingSubject(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{})

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	token, err := tk.SignedString(svc.signingKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty subject, got: %v", err)
	}
}

// The signing key comes from the config when set; tokens issued under one
// key are rejected by a service built with another.
func TestAuthService_SigningKeyFromConfig(t *testing.T) {
	viper.Set("auth.signing_key", "configured-key")
	t.Cleanup(func() { viper.Set("auth.signing_key", "") })

	hash, err := hashPassword("pw")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: "carol", PasswordHash: hash, Role: models.RoleUser}, nil
		},
	}

	configured := NewAuthService(mock)
	if string(configured.signingKey) != "configured-key" {
		t.Fatalf("expected key from config, got %q", configured.signingKey)
	}

	resp, err := configured.Login("carol", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if username, err := configured.ParseToken(resp.Token); err != nil || username != "carol" {
		t.Fatalf("round trip under configured key failed: %q, %v", username, err)
	}

	// A service falling back to the default key must reject the token.
	viper.Set("auth.signing_key", "")
	fallback := NewAuthService(mock)
	if string(fallback.signingKey) != defaultSigningKey {
		t.Fatalf("expected fallback key, got %q", fallback.signingKey)
	}
	if _, err := fallback.ParseToken(resp.Token); err == nil {
		t.Fatalf("expected signature mismatch across keys")
	}
}

// --- InitializeDefaultUsers tests ---

func TestAuthService_InitializeDefaultUsers_SeedsBothWhenAbsent(t *testing.T) {
	mock := &mockUserRepo{
		ExistsFn: func(username string) (bool, error) { return false, nil },
		CreateFn: func(u models.User) (int64, error) { return int64(len(u.Username)), nil },
	}
	svc := NewAuthService(mock)

	if err := svc.InitializeDefaultUsers(); err != nil {
		t.Fatalf("InitializeDefaultUsers returned error: %v", err)
	}
	if len(mock.createCalls) != 2 {
		t.Fatalf("expected 2 Create calls, got %d", len(mock.createCalls))
	}

	admin, user := mock.createCalls[0], mock.createCalls[1]
	if admin.Username != "admin" || admin.Role != models.RoleAdmin || !admin.Active {
		t.Fatalf("unexpected admin seed: %+v", admin)
	}
	if user.Username != "user" || user.Role != models.RoleUser || !user.Active {
		t.Fatalf("unexpected user seed: %+v", user)
	}

	// Passwords are stored hashed, never in plaintext.
	if admin.PasswordHash == "admin123" || user.PasswordHash == "user123" {
		t.Fatalf("seed passwords stored in plaintext")
	}
	if err := verifyPassword(admin.PasswordHash, "admin123"); err != nil {
		t.Fatalf("admin hash does not verify: %v", err)
	}
	if err := verifyPassword(user.PasswordHash, "user123"); err != nil {
		t.Fatalf("user hash does not verify: %v", err)
	}
}

func TestAuthService_InitializeDefaultUsers_Idempotent(t *testing.T) {
	existing := map[string]bool{}
	mock := &mockUserRepo{
		ExistsFn: func(username string) (bool, error) { return existing[username], nil },
		CreateFn: func(u models.User) (int64, error) {
			existing[u.Username] = true
			return 1, nil
		},
	}
	svc := NewAuthService(mock)

	if err := svc.InitializeDefaultUsers(); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	created := len(mock.createCalls)

	// Second invocation leaves the store unchanged.
	if err := svc.InitializeDefaultUsers(); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if len(mock.createCalls) != created {
		t.Fatalf("second run created %d more users", len(mock.createCalls)-created)
	}
}

func TestAuthService_InitializeDefaultUsers_PartialSeed(t *testing.T) {
	// Only "admin" already exists; the run must create exactly "user".
	mock := &mockUserRepo{
		ExistsFn: func(username string) (bool, error) { return username == "admin", nil },
		CreateFn: func(u models.User) (int64, error) { return 2, nil },
	}
	svc := NewAuthService(mock)

	if err := svc.InitializeDefaultUsers(); err != nil {
		t.Fatalf("InitializeDefaultUsers returned error: %v", err)
	}
	if len(mock.createCalls) != 1 || mock.createCalls[0].Username != "user" {
		t.Fatalf("expected only 'user' to be created, got %+v", mock.createCalls)
	}
}

func TestAuthService_InitializeDefaultUsers_RepoError(t *testing.T) {
	mock := &mockUserRepo{
		ExistsFn: func(username string) (bool, error) { return false, errors.New("db down") },
	}
	svc := NewAuthService(mock)

	if err := svc.InitializeDefaultUsers(); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}
