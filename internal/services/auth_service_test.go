package services

import (
	"errors"
	"os"
	"testing"

	"tenthouse_backend/internal/models"
	"tenthouse_backend/internal/repositories"
	"tenthouse_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	if err := utils.InitJWT("test-signing-key"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeAuthRepo struct {
	admins map[string]*models.AdminUser // keyed by email
	hashes map[string]string
	byID   map[int64]*models.AdminUser
	err    error // returned from every lookup when set
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		admins: map[string]*models.AdminUser{},
		hashes: map[string]string{},
		byID:   map[int64]*models.AdminUser{},
	}
}

func (f *fakeAuthRepo) addAccount(t *testing.T, id int64, email, password string, isAdmin, isActive bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	admin := &models.AdminUser{ID: id, Email: email, IsAdmin: isAdmin, IsActive: isActive}
	f.admins[email] = admin
	f.hashes[email] = string(hash)
	f.byID[id] = admin
}

func (f *fakeAuthRepo) CreateAdmin(_ repositories.SQLExecutor, admin *models.AdminUser, hashedPassword string) (int64, error) {
	if _, exists := f.admins[admin.Email]; exists {
		return 0, repositories.ErrDuplicateKey
	}
	admin.ID = int64(len(f.byID) + 1)
	f.admins[admin.Email] = admin
	f.hashes[admin.Email] = hashedPassword
	f.byID[admin.ID] = admin
	return admin.ID, nil
}

func (f *fakeAuthRepo) FindAdminByEmail(email string) (*models.AdminUser, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	admin, ok := f.admins[email]
	if !ok {
		return nil, "", repositories.ErrNotFound
	}
	copy := *admin
	return &copy, f.hashes[email], nil
}

func (f *fakeAuthRepo) FindAdminByID(id int64) (*models.AdminUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	admin, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copy := *admin
	return &copy, nil
}

func TestLoginAdminSuccess(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.addAccount(t, 1, "admin@azadtent.com", "s3cret", true, true)
	svc := NewAuthService(repo, nil)

	resp, err := svc.LoginAdmin(LoginRequest{Email: "Admin@AzadTent.com ", Password: "s3cret"})
	if err != nil {
		t.Fatalf("LoginAdmin: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}
	if resp.Admin.PasswordHash != "" {
		t.Error("password hash must not be returned")
	}

	claims, err := utils.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.AdminID != 1 || claims.Email != "admin@azadtent.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLoginAdminRejectsBadCredentials(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.addAccount(t, 1, "admin@azadtent.com", "s3cret", true, true)
	svc := NewAuthService(repo, nil)

	if _, err := svc.LoginAdmin(LoginRequest{Email: "nobody@azadtent.com", Password: "s3cret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.LoginAdmin(LoginRequest{Email: "admin@azadtent.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginAdminDeniesNonAdminAccounts(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.addAccount(t, 1, "staff@azadtent.com", "s3cret", false, true)
	repo.addAccount(t, 2, "former@azadtent.com", "s3cret", true, false)
	svc := NewAuthService(repo, nil)

	if _, err := svc.LoginAdmin(LoginRequest{Email: "staff@azadtent.com", Password: "s3cret"}); !errors.Is(err, ErrNotAnAdmin) {
		t.Errorf("non-admin: expected ErrNotAnAdmin, got %v", err)
	}
	if _, err := svc.LoginAdmin(LoginRequest{Email: "former@azadtent.com", Password: "s3cret"}); !errors.Is(err, ErrNotAnAdmin) {
		t.Errorf("inactive: expected ErrNotAnAdmin, got %v", err)
	}
}

func TestVerifyAdminDeniesByDefault(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.addAccount(t, 1, "admin@azadtent.com", "s3cret", true, true)
	repo.addAccount(t, 2, "staff@azadtent.com", "s3cret", false, true)
	svc := NewAuthService(repo, nil)

	if err := svc.VerifyAdmin(1); err != nil {
		t.Errorf("admin account should verify, got %v", err)
	}
	if err := svc.VerifyAdmin(2); !errors.Is(err, ErrNotAnAdmin) {
		t.Errorf("non-admin: expected ErrNotAnAdmin, got %v", err)
	}
	if err := svc.VerifyAdmin(99); !errors.Is(err, ErrNotAnAdmin) {
		t.Errorf("unknown id: expected ErrNotAnAdmin, got %v", err)
	}

	repo.err = repositories.ErrDatabaseError
	if err := svc.VerifyAdmin(1); !errors.Is(err, ErrNotAnAdmin) {
		t.Errorf("lookup failure must deny, got %v", err)
	}
}
