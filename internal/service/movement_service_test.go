package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/testutil"
)

type movementFixture struct {
	service         *MovementService
	movementRepo    *testutil.MockMovementRepository
	accountRepo     *testutil.MockAccountRepository
	thirdPartyRepo  *testutil.MockThirdPartyRepository
	categoryRepo    *testutil.MockCategoryRepository
	subcategoryRepo *testutil.MockSubcategoryRepository
	transferRepo    *testutil.MockTransferRepository
}

// newMovementFixture seeds user 1 with account 1, third party 1, category 1
// and subcategory 1 under that category.
func newMovementFixture() *movementFixture {
	f := &movementFixture{
		movementRepo:    testutil.NewMockMovementRepository(),
		accountRepo:     testutil.NewMockAccountRepository(),
		thirdPartyRepo:  testutil.NewMockThirdPartyRepository(),
		categoryRepo:    testutil.NewMockCategoryRepository(),
		subcategoryRepo: testutil.NewMockSubcategoryRepository(),
		transferRepo:    testutil.NewMockTransferRepository(),
	}
	f.accountRepo.AddAccount(&domain.Account{UserID: 1, Description: "Compte courant", NomBanque: "BP"})
	f.thirdPartyRepo.AddThirdParty(&domain.ThirdParty{UserID: 1, Nom: "Carrefour"})
	f.categoryRepo.AddCategory(&domain.Category{Nom: "Alimentation"})
	f.subcategoryRepo.AddSubcategory(&domain.Subcategory{Nom: "Courses", CategoryID: 1})
	f.service = NewMovementService(f.movementRepo, f.accountRepo, f.thirdPartyRepo,
		f.categoryRepo, f.subcategoryRepo, f.transferRepo)
	return f
}

func validMovementInput() CreateMovementInput {
	return CreateMovementInput{
		Montant:      decPtr("25.90"),
		Type:         strPtr("debit"),
		Date:         timePtr(today()),
		AccountID:    i64Ptr(1),
		ThirdPartyID: i64Ptr(1),
		CategoryID:   i64Ptr(1),
	}
}

func TestCreateMovement_Success(t *testing.T) {
	f := newMovementFixture()

	movement, err := f.service.CreateMovement(1, validMovementInput())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if movement.Type != domain.MovementDebit {
		t.Errorf("Expected type debit, got %s", movement.Type)
	}
	if !movement.Montant.Equal(decimal.RequireFromString("25.90")) {
		t.Errorf("Expected amount 25.90, got %s", movement.Montant)
	}
	if movement.ThirdPartyID == nil || *movement.ThirdPartyID != 1 {
		t.Errorf("Expected third party 1, got %v", movement.ThirdPartyID)
	}
}

func TestCreateMovement_MissingEverything(t *testing.T) {
	f := newMovementFixture()

	_, err := f.service.CreateMovement(1, CreateMovementInput{})
	requireValidationDetail(t, err, "typeMouvement is required")
	requireValidationDetail(t, err, "montant is required and must be a number")
	requireValidationDetail(t, err, "dateMouvement is required")
	requireValidationDetail(t, err, "idCompte is required")
	requireValidationDetail(t, err, "idTiers is required")
	requireValidationDetail(t, err, "idCategorie is required")
}

func TestCreateMovement_InvalidType(t *testing.T) {
	f := newMovementFixture()
	input := validMovementInput()
	input.Type = strPtr("withdrawal")

	_, err := f.service.CreateMovement(1, input)
	requireValidationDetail(t, err, "typeMouvement must be debit or credit")
}

func TestCreateMovement_ZeroAmount(t *testing.T) {
	f := newMovementFixture()
	input := validMovementInput()
	input.Montant = decPtr("0")

	_, err := f.service.CreateMovement(1, input)
	requireValidationDetail(t, err, "montant must be greater than zero")
}

func TestCreateMovement_NegativeAmount(t *testing.T) {
	f := newMovementFixture()
	input := validMovementInput()
	input.Montant = decPtr("-10.00")

	_, err := f.service.CreateMovement(1, input)
	requireValidationDetail(t, err, "montant must be greater than zero")
}

func TestCreateMovement_SmallestAmountAccepted(t *testing.T) {
	f := newMovementFixture()
	input := validMovementInput()
	input.Montant = decPtr("0.01")

	if _, err := f.service.CreateMovement(1, input); err != nil {
		t.Fatalf("Expected 0.01 to be accepted, got %v", err)
	}
}

func TestCreateMovement_PastDate(t *testing.T) {
	f := newMovementFixture()
	input := validMovementInput()
	input.Date = timePtr(yesterday())

	_, err := f.service.CreateMovement(1, input)
	requireValidationDetail(t, err, "dateMouvement can't be in the past")
}

func TestCreateMovement_FutureDateAccepted(t *testing.T) {
	f := newMovementFixture()
	input := validMovementInput()
	input.Date = timePtr(tomorrow())

	if _, err := f.service.CreateMovement(1, input); err != nil {
		t.Fatalf("Expected future date to be accepted, got %v", err)
	}
}

func TestCreateMovement_AccountNotOwned(t *testing.T) {
	f := newMovementFixture()
	f.accountRepo.AddAccount(&domain.Account{UserID: 2, Description: "Other", NomBanque: "BP"})
	input := validMovementInput()
	input.AccountID = i64Ptr(2)

	_, err := f.service.CreateMovement(1, input)
	if err != domain.ErrAccountNotFound {
		t.Fatalf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestCreateMovement_SubcategoryOfOtherCategory(t *testing.T) {
	f := newMovementFixture()
	f.categoryRepo.AddCategory(&domain.Category{Nom: "Transport"})
	f.subcategoryRepo.AddSubcategory(&domain.Subcategory{Nom: "Essence", CategoryID: 2})
	input := validMovementInput()
	input.SubcategoryID = i64Ptr(2)

	_, err := f.service.CreateMovement(1, input)
	if err != domain.ErrSubcategoryNotFound {
		t.Fatalf("Expected ErrSubcategoryNotFound, got %v", err)
	}
}

func TestUpdateMovement_NoFields(t *testing.T) {
	f := newMovementFixture()
	f.movementRepo.AddMovement(1, &domain.Movement{AccountID: 1, CategoryID: 1, Type: domain.MovementDebit})

	_, err := f.service.UpdateMovement(1, 1, UpdateMovementInput{})
	requireValidationDetail(t, err, "No fields to update")
}

func TestUpdateMovement_PastDate(t *testing.T) {
	f := newMovementFixture()
	f.movementRepo.AddMovement(1, &domain.Movement{AccountID: 1, CategoryID: 1, Type: domain.MovementDebit})

	_, err := f.service.UpdateMovement(1, 1, UpdateMovementInput{Date: timePtr(yesterday())})
	requireValidationDetail(t, err, "dateMouvement can't be in the past")
}

func TestUpdateMovement_SubcategoryCheckedAgainstExistingCategory(t *testing.T) {
	f := newMovementFixture()
	f.movementRepo.AddMovement(1, &domain.Movement{AccountID: 1, CategoryID: 1, Type: domain.MovementDebit})

	movement, err := f.service.UpdateMovement(1, 1, UpdateMovementInput{SubcategoryID: i64Ptr(1)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if movement.SubcategoryID == nil || *movement.SubcategoryID != 1 {
		t.Errorf("Expected subcategory 1, got %v", movement.SubcategoryID)
	}
}

func TestUpdateMovement_SubcategoryCheckedAgainstNewCategory(t *testing.T) {
	f := newMovementFixture()
	f.categoryRepo.AddCategory(&domain.Category{Nom: "Transport"})
	f.movementRepo.AddMovement(1, &domain.Movement{AccountID: 1, CategoryID: 1, Type: domain.MovementDebit})

	// Subcategory 1 belongs to category 1, so moving the movement to
	// category 2 with that subcategory must fail.
	_, err := f.service.UpdateMovement(1, 1, UpdateMovementInput{
		CategoryID:    i64Ptr(2),
		SubcategoryID: i64Ptr(1),
	})
	if err != domain.ErrSubcategoryNotFound {
		t.Fatalf("Expected ErrSubcategoryNotFound, got %v", err)
	}
}

func TestUpdateMovement_NotOwned(t *testing.T) {
	f := newMovementFixture()
	f.movementRepo.AddMovement(2, &domain.Movement{AccountID: 5, CategoryID: 1, Type: domain.MovementDebit})

	_, err := f.service.UpdateMovement(1, 1, UpdateMovementInput{CategoryID: i64Ptr(1)})
	if err != domain.ErrMovementNotFound {
		t.Fatalf("Expected ErrMovementNotFound, got %v", err)
	}
}

func TestGetMovementsByAccount_NotOwned(t *testing.T) {
	f := newMovementFixture()
	f.accountRepo.AddAccount(&domain.Account{UserID: 2, Description: "Other", NomBanque: "BP"})

	_, err := f.service.GetMovementsByAccount(1, 2)
	if err != domain.ErrAccountNotFound {
		t.Fatalf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestDeleteMovement_ReturnsDeletedRow(t *testing.T) {
	f := newMovementFixture()
	f.movementRepo.AddMovement(1, &domain.Movement{
		AccountID:  1,
		CategoryID: 1,
		Type:       domain.MovementDebit,
		Montant:    decimal.RequireFromString("25.90"),
	})

	movement, err := f.service.DeleteMovement(1, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !movement.Montant.Equal(decimal.RequireFromString("25.90")) {
		t.Errorf("Expected deleted amount echoed, got %s", movement.Montant)
	}
}
