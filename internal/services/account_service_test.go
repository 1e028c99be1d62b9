package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	dbm "mealweek/internal/models/db_models"
	"mealweek/internal/models/request_models"
	"mealweek/pkg/utils"
)

type stubAccountRepo struct {
	byEmail  map[string]*dbm.Account
	inserted *dbm.Account
}

func (s *stubAccountRepo) Insert(_ context.Context, account *dbm.Account) error {
	s.inserted = account
	return nil
}

func (s *stubAccountRepo) FindById(_ context.Context, _ string) (*dbm.Account, error) {
	return nil, nil
}

func (s *stubAccountRepo) FindByEmail(_ context.Context, email string) (*dbm.Account, error) {
	return s.byEmail[email], nil
}

func TestCreateAccountHashesPassword(t *testing.T) {
	repo := &stubAccountRepo{byEmail: map[string]*dbm.Account{}}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Minh",
		Email:       "minh@example.com",
		Password:    "correct horse",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	if repo.inserted == nil {
		t.Fatal("account not inserted")
	}
	if repo.inserted.PasswordHash == "correct horse" {
		t.Error("password stored in plain text")
	}
	if err := utils.ComparePasswords(repo.inserted.PasswordHash, "correct horse"); err != nil {
		t.Error("stored hash does not verify against the password")
	}
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	existing := &dbm.Account{Email: "taken@example.com"}
	repo := &stubAccountRepo{byEmail: map[string]*dbm.Account{"taken@example.com": existing}}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "taken@example.com",
		Password: "irrelevant1",
	})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	hash, err := utils.HashPassword("open sesame")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	account := &dbm.Account{Email: "u@example.com", PasswordHash: hash}
	account.ID = uuid.New()

	svc := NewAccountService(&stubAccountRepo{byEmail: map[string]*dbm.Account{"u@example.com": account}})

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "u@example.com",
		Password: "open sesame",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != account.ID.String() {
		t.Errorf("token user = %q, want %q", claims.UserID, account.ID.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, _ := utils.HashPassword("open sesame")
	account := &dbm.Account{Email: "u@example.com", PasswordHash: hash}

	svc := NewAccountService(&stubAccountRepo{byEmail: map[string]*dbm.Account{"u@example.com": account}})

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "u@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}
