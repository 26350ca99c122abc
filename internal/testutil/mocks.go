// Package testutil provides map-backed repository mocks for service and
// handler tests.
package testutil

import (
	"time"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users  map[int64]*domain.User
	NextID int64
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[int64]*domain.User), NextID: 1}
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	if user.ID == 0 {
		user.ID = m.NextID
		m.NextID++
	} else if user.ID >= m.NextID {
		m.NextID = user.ID + 1
	}
	m.Users[user.ID] = user
}

func (m *MockUserRepository) GetAll() ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, u)
	}
	return users, nil
}

func (m *MockUserRepository) GetByID(id int64) (*domain.User, error) {
	if u, ok := m.Users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByLogin(login string) (*domain.User, error) {
	for _, u := range m.Users {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	for _, u := range m.Users {
		if u.Login == user.Login {
			return nil, domain.ErrDuplicateLogin
		}
	}
	user.ID = m.NextID
	m.NextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.Users[user.ID] = user
	return user, nil
}

func (m *MockUserRepository) Update(id int64, update domain.UserUpdate) (*domain.User, error) {
	u, ok := m.Users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Nom != nil {
		u.Nom = *update.Nom
	}
	if update.Prenom != nil {
		u.Prenom = *update.Prenom
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.Ville != nil {
		u.Ville = update.Ville
	}
	if update.CodePostal != nil {
		u.CodePostal = update.CodePostal
	}
	u.UpdatedAt = time.Now()
	return u, nil
}

func (m *MockUserRepository) Delete(id int64) (*domain.User, error) {
	u, ok := m.Users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(m.Users, id)
	return u, nil
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int64]*domain.Category
	NextID     int64
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[int64]*domain.Category), NextID: 1}
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(c *domain.Category) {
	if c.ID == 0 {
		c.ID = m.NextID
		m.NextID++
	} else if c.ID >= m.NextID {
		m.NextID = c.ID + 1
	}
	m.Categories[c.ID] = c
}

func (m *MockCategoryRepository) GetAll() ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (m *MockCategoryRepository) GetByID(id int64) (*domain.Category, error) {
	if c, ok := m.Categories[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Create(nom string) (*domain.Category, error) {
	c := &domain.Category{ID: m.NextID, Nom: nom, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.NextID++
	m.Categories[c.ID] = c
	return c, nil
}

func (m *MockCategoryRepository) Update(id int64, nom string) (*domain.Category, error) {
	c, ok := m.Categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	c.Nom = nom
	c.UpdatedAt = time.Now()
	return c, nil
}

func (m *MockCategoryRepository) Delete(id int64) (*domain.Category, error) {
	c, ok := m.Categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return c, nil
}

// MockSubcategoryRepository is a mock implementation of domain.SubcategoryRepository
type MockSubcategoryRepository struct {
	Subcategories map[int64]*domain.Subcategory
	NextID        int64
}

// NewMockSubcategoryRepository creates a new MockSubcategoryRepository
func NewMockSubcategoryRepository() *MockSubcategoryRepository {
	return &MockSubcategoryRepository{Subcategories: make(map[int64]*domain.Subcategory), NextID: 1}
}

// AddSubcategory adds a subcategory to the mock repository (helper for tests)
func (m *MockSubcategoryRepository) AddSubcategory(s *domain.Subcategory) {
	if s.ID == 0 {
		s.ID = m.NextID
		m.NextID++
	} else if s.ID >= m.NextID {
		m.NextID = s.ID + 1
	}
	m.Subcategories[s.ID] = s
}

func (m *MockSubcategoryRepository) GetByCategory(categoryID int64) ([]*domain.Subcategory, error) {
	var subs []*domain.Subcategory
	for _, s := range m.Subcategories {
		if s.CategoryID == categoryID {
			subs = append(subs, s)
		}
	}
	return subs, nil
}

func (m *MockSubcategoryRepository) GetByID(categoryID, id int64) (*domain.Subcategory, error) {
	if s, ok := m.Subcategories[id]; ok && s.CategoryID == categoryID {
		return s, nil
	}
	return nil, domain.ErrSubcategoryNotFound
}

func (m *MockSubcategoryRepository) Create(sub *domain.Subcategory) (*domain.Subcategory, error) {
	sub.ID = m.NextID
	m.NextID++
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt
	m.Subcategories[sub.ID] = sub
	return sub, nil
}

func (m *MockSubcategoryRepository) Update(categoryID, id int64, nom string) (*domain.Subcategory, error) {
	s, ok := m.Subcategories[id]
	if !ok || s.CategoryID != categoryID {
		return nil, domain.ErrSubcategoryNotFound
	}
	s.Nom = nom
	s.UpdatedAt = time.Now()
	return s, nil
}

func (m *MockSubcategoryRepository) Delete(categoryID, id int64) (*domain.Subcategory, error) {
	s, ok := m.Subcategories[id]
	if !ok || s.CategoryID != categoryID {
		return nil, domain.ErrSubcategoryNotFound
	}
	delete(m.Subcategories, id)
	return s, nil
}

// MockAccountRepository is a mock implementation of domain.AccountRepository
type MockAccountRepository struct {
	Accounts map[int64]*domain.Account
	NextID   int64
}

// NewMockAccountRepository creates a new MockAccountRepository
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{Accounts: make(map[int64]*domain.Account), NextID: 1}
}

// AddAccount adds an account to the mock repository (helper for tests)
func (m *MockAccountRepository) AddAccount(a *domain.Account) {
	if a.ID == 0 {
		a.ID = m.NextID
		m.NextID++
	} else if a.ID >= m.NextID {
		m.NextID = a.ID + 1
	}
	m.Accounts[a.ID] = a
}

func (m *MockAccountRepository) GetAllByUser(userID int64) ([]*domain.Account, error) {
	var accounts []*domain.Account
	for _, a := range m.Accounts {
		if a.UserID == userID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) GetByID(userID, id int64) (*domain.Account, error) {
	if a, ok := m.Accounts[id]; ok && a.UserID == userID {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) Create(account *domain.Account) (*domain.Account, error) {
	account.ID = m.NextID
	m.NextID++
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	m.Accounts[account.ID] = account
	return account, nil
}

func (m *MockAccountRepository) Update(userID, id int64, update domain.AccountUpdate) (*domain.Account, error) {
	a, ok := m.Accounts[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	if update.Description != nil {
		a.Description = *update.Description
	}
	if update.NomBanque != nil {
		a.NomBanque = *update.NomBanque
	}
	if update.SoldeInitial != nil {
		a.SoldeInitial = *update.SoldeInitial
	}
	if update.DernierSolde != nil {
		a.DernierSolde = *update.DernierSolde
	}
	a.UpdatedAt = time.Now()
	return a, nil
}

func (m *MockAccountRepository) Delete(userID, id int64) (*domain.Account, error) {
	a, ok := m.Accounts[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	delete(m.Accounts, id)
	return a, nil
}

// MockThirdPartyRepository is a mock implementation of domain.ThirdPartyRepository
type MockThirdPartyRepository struct {
	ThirdParties map[int64]*domain.ThirdParty
	NextID       int64
}

// NewMockThirdPartyRepository creates a new MockThirdPartyRepository
func NewMockThirdPartyRepository() *MockThirdPartyRepository {
	return &MockThirdPartyRepository{ThirdParties: make(map[int64]*domain.ThirdParty), NextID: 1}
}

// AddThirdParty adds a third party to the mock repository (helper for tests)
func (m *MockThirdPartyRepository) AddThirdParty(tp *domain.ThirdParty) {
	if tp.ID == 0 {
		tp.ID = m.NextID
		m.NextID++
	} else if tp.ID >= m.NextID {
		m.NextID = tp.ID + 1
	}
	m.ThirdParties[tp.ID] = tp
}

func (m *MockThirdPartyRepository) GetAllByUser(userID int64) ([]*domain.ThirdParty, error) {
	var tps []*domain.ThirdParty
	for _, tp := range m.ThirdParties {
		if tp.UserID == userID {
			tps = append(tps, tp)
		}
	}
	return tps, nil
}

func (m *MockThirdPartyRepository) GetByID(userID, id int64) (*domain.ThirdParty, error) {
	if tp, ok := m.ThirdParties[id]; ok && tp.UserID == userID {
		return tp, nil
	}
	return nil, domain.ErrThirdPartyNotFound
}

func (m *MockThirdPartyRepository) Create(tp *domain.ThirdParty) (*domain.ThirdParty, error) {
	tp.ID = m.NextID
	m.NextID++
	tp.CreatedAt = time.Now()
	tp.UpdatedAt = tp.CreatedAt
	m.ThirdParties[tp.ID] = tp
	return tp, nil
}

func (m *MockThirdPartyRepository) Update(userID, id int64, nom string) (*domain.ThirdParty, error) {
	tp, ok := m.ThirdParties[id]
	if !ok || tp.UserID != userID {
		return nil, domain.ErrThirdPartyNotFound
	}
	tp.Nom = nom
	tp.UpdatedAt = time.Now()
	return tp, nil
}

func (m *MockThirdPartyRepository) Delete(userID, id int64) (*domain.ThirdParty, error) {
	tp, ok := m.ThirdParties[id]
	if !ok || tp.UserID != userID {
		return nil, domain.ErrThirdPartyNotFound
	}
	delete(m.ThirdParties, id)
	return tp, nil
}

// MockMovementRepository is a mock implementation of domain.MovementRepository.
// Ownership is resolved through the Owners map (movement ID to user ID).
type MockMovementRepository struct {
	Movements map[int64]*domain.Movement
	Owners    map[int64]int64
	NextID    int64
}

// NewMockMovementRepository creates a new MockMovementRepository
func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{
		Movements: make(map[int64]*domain.Movement),
		Owners:    make(map[int64]int64),
		NextID:    1,
	}
}

// AddMovement adds a movement owned by userID (helper for tests)
func (m *MockMovementRepository) AddMovement(userID int64, mv *domain.Movement) {
	if mv.ID == 0 {
		mv.ID = m.NextID
		m.NextID++
	} else if mv.ID >= m.NextID {
		m.NextID = mv.ID + 1
	}
	m.Movements[mv.ID] = mv
	m.Owners[mv.ID] = userID
}

func (m *MockMovementRepository) GetAllByUser(userID int64) ([]*domain.Movement, error) {
	var movements []*domain.Movement
	for id, mv := range m.Movements {
		if m.Owners[id] == userID {
			movements = append(movements, mv)
		}
	}
	return movements, nil
}

func (m *MockMovementRepository) GetAllByAccount(userID, accountID int64) ([]*domain.Movement, error) {
	var movements []*domain.Movement
	for id, mv := range m.Movements {
		if m.Owners[id] == userID && mv.AccountID == accountID {
			movements = append(movements, mv)
		}
	}
	return movements, nil
}

func (m *MockMovementRepository) GetByID(userID, id int64) (*domain.Movement, error) {
	if mv, ok := m.Movements[id]; ok && m.Owners[id] == userID {
		return mv, nil
	}
	return nil, domain.ErrMovementNotFound
}

func (m *MockMovementRepository) Create(userID int64, movement *domain.Movement) (*domain.Movement, error) {
	movement.ID = m.NextID
	m.NextID++
	movement.CreatedAt = time.Now()
	movement.UpdatedAt = movement.CreatedAt
	m.Movements[movement.ID] = movement
	m.Owners[movement.ID] = userID
	return movement, nil
}

func (m *MockMovementRepository) Update(userID, id int64, update domain.MovementUpdate) (*domain.Movement, error) {
	mv, ok := m.Movements[id]
	if !ok || m.Owners[id] != userID {
		return nil, domain.ErrMovementNotFound
	}
	if update.Date != nil {
		mv.Date = *update.Date
	}
	if update.CategoryID != nil {
		mv.CategoryID = *update.CategoryID
	}
	if update.SubcategoryID != nil {
		mv.SubcategoryID = update.SubcategoryID
	}
	mv.UpdatedAt = time.Now()
	return mv, nil
}

func (m *MockMovementRepository) Delete(userID, id int64) (*domain.Movement, error) {
	mv, ok := m.Movements[id]
	if !ok || m.Owners[id] != userID {
		return nil, domain.ErrMovementNotFound
	}
	delete(m.Movements, id)
	delete(m.Owners, id)
	return mv, nil
}

// MockTransferRepository is a mock implementation of domain.TransferRepository.
// Ownership is resolved through the Owners map (transfer ID to user ID).
type MockTransferRepository struct {
	Transfers map[int64]*domain.Transfer
	Owners    map[int64]int64
	NextID    int64
}

// NewMockTransferRepository creates a new MockTransferRepository
func NewMockTransferRepository() *MockTransferRepository {
	return &MockTransferRepository{
		Transfers: make(map[int64]*domain.Transfer),
		Owners:    make(map[int64]int64),
		NextID:    1,
	}
}

// AddTransfer adds a transfer owned by userID (helper for tests)
func (m *MockTransferRepository) AddTransfer(userID int64, tr *domain.Transfer) {
	if tr.ID == 0 {
		tr.ID = m.NextID
		m.NextID++
	} else if tr.ID >= m.NextID {
		m.NextID = tr.ID + 1
	}
	m.Transfers[tr.ID] = tr
	m.Owners[tr.ID] = userID
}

func (m *MockTransferRepository) GetAllByUser(userID int64) ([]*domain.Transfer, error) {
	var transfers []*domain.Transfer
	for id, tr := range m.Transfers {
		if m.Owners[id] == userID {
			transfers = append(transfers, tr)
		}
	}
	return transfers, nil
}

func (m *MockTransferRepository) GetByID(userID, id int64) (*domain.Transfer, error) {
	if tr, ok := m.Transfers[id]; ok && m.Owners[id] == userID {
		return tr, nil
	}
	return nil, domain.ErrTransferNotFound
}

func (m *MockTransferRepository) Create(userID int64, transfer *domain.Transfer) (*domain.Transfer, error) {
	transfer.ID = m.NextID
	m.NextID++
	transfer.CreatedAt = time.Now()
	transfer.UpdatedAt = transfer.CreatedAt
	m.Transfers[transfer.ID] = transfer
	m.Owners[transfer.ID] = userID
	return transfer, nil
}

func (m *MockTransferRepository) Update(userID, id int64, update domain.TransferUpdate) (*domain.Transfer, error) {
	tr, ok := m.Transfers[id]
	if !ok || m.Owners[id] != userID {
		return nil, domain.ErrTransferNotFound
	}
	if update.Date != nil {
		tr.Date = *update.Date
	}
	if update.CategoryID != nil {
		tr.CategoryID = *update.CategoryID
	}
	tr.UpdatedAt = time.Now()
	return tr, nil
}

func (m *MockTransferRepository) Delete(userID, id int64) (*domain.Transfer, error) {
	tr, ok := m.Transfers[id]
	if !ok || m.Owners[id] != userID {
		return nil, domain.ErrTransferNotFound
	}
	delete(m.Transfers, id)
	delete(m.Owners, id)
	return tr, nil
}
