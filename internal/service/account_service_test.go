package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/testutil"
)

func TestCreateAccount_Success(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	account, err := accountService.CreateAccount(1, AccountInput{
		Description:  strPtr("Compte courant"),
		NomBanque:    strPtr("Banque Postale"),
		SoldeInitial: decPtr("1000.50"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.Description != "Compte courant" {
		t.Errorf("Expected description 'Compte courant', got %s", account.Description)
	}
	if account.UserID != 1 {
		t.Errorf("Expected user ID 1, got %d", account.UserID)
	}
	if !account.SoldeInitial.Equal(decimal.RequireFromString("1000.50")) {
		t.Errorf("Expected initial balance 1000.50, got %s", account.SoldeInitial)
	}
	if !account.DernierSolde.Equal(account.SoldeInitial) {
		t.Errorf("Expected running balance to start at the initial balance, got %s", account.DernierSolde)
	}
}

func TestCreateAccount_MissingFields(t *testing.T) {
	accountService := NewAccountService(testutil.NewMockAccountRepository())

	_, err := accountService.CreateAccount(1, AccountInput{})
	requireValidationDetail(t, err, "DescriptionCompte is required")
	requireValidationDetail(t, err, "NomBanque is required")
	requireValidationDetail(t, err, "SoldeInitial is required")
}

func TestCreateAccount_BlankBankName(t *testing.T) {
	accountService := NewAccountService(testutil.NewMockAccountRepository())

	_, err := accountService.CreateAccount(1, AccountInput{
		Description:  strPtr("Compte courant"),
		NomBanque:    strPtr("   "),
		SoldeInitial: decPtr("0"),
	})
	requireValidationDetail(t, err, "NomBanque is required")
}

func TestUpdateAccount_FullResetsRunningBalance(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountRepo.AddAccount(&domain.Account{
		UserID:       1,
		Description:  "Compte courant",
		NomBanque:    "Banque Postale",
		SoldeInitial: decimal.RequireFromString("100.00"),
		DernierSolde: decimal.RequireFromString("42.17"),
	})
	accountService := NewAccountService(accountRepo)

	account, err := accountService.UpdateAccount(1, 1, AccountInput{
		Description:  strPtr("Compte joint"),
		NomBanque:    strPtr("Credit Agricole"),
		SoldeInitial: decPtr("500.00"),
	}, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !account.DernierSolde.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("Expected running balance reset to 500.00, got %s", account.DernierSolde)
	}
}

func TestUpdateAccount_PartialKeepsOtherFields(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountRepo.AddAccount(&domain.Account{
		UserID:       1,
		Description:  "Compte courant",
		NomBanque:    "Banque Postale",
		SoldeInitial: decimal.RequireFromString("100.00"),
		DernierSolde: decimal.RequireFromString("42.17"),
	})
	accountService := NewAccountService(accountRepo)

	account, err := accountService.UpdateAccount(1, 1, AccountInput{
		Description: strPtr("Compte joint"),
	}, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if account.Description != "Compte joint" {
		t.Errorf("Expected updated description, got %s", account.Description)
	}
	if account.NomBanque != "Banque Postale" {
		t.Errorf("Expected bank name unchanged, got %s", account.NomBanque)
	}
	if !account.DernierSolde.Equal(decimal.RequireFromString("42.17")) {
		t.Errorf("Expected running balance unchanged, got %s", account.DernierSolde)
	}
}

func TestUpdateAccount_PartialNoFields(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountRepo.AddAccount(&domain.Account{UserID: 1, Description: "Compte courant", NomBanque: "BP"})
	accountService := NewAccountService(accountRepo)

	_, err := accountService.UpdateAccount(1, 1, AccountInput{}, true)
	requireValidationDetail(t, err, "No fields to update")
}

func TestGetAccountByID_NotOwned(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountRepo.AddAccount(&domain.Account{UserID: 2, Description: "Someone else's", NomBanque: "BP"})
	accountService := NewAccountService(accountRepo)

	_, err := accountService.GetAccountByID(1, 1)
	if err != domain.ErrAccountNotFound {
		t.Fatalf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestDeleteAccount_ReturnsDeletedRow(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountRepo.AddAccount(&domain.Account{UserID: 1, Description: "Compte courant", NomBanque: "BP"})
	accountService := NewAccountService(accountRepo)

	account, err := accountService.DeleteAccount(1, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if account.Description != "Compte courant" {
		t.Errorf("Expected deleted row echoed, got %s", account.Description)
	}
	if len(accountRepo.Accounts) != 0 {
		t.Errorf("Expected account removed, %d left", len(accountRepo.Accounts))
	}
}
