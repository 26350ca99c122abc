package domain

import "time"

// Category is a global, user-independent classification referenced by
// movements and transfers.
type Category struct {
	ID        int64
	Nom       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CategoryRepository interface {
	GetAll() ([]*Category, error)
	GetByID(id int64) (*Category, error)
	Create(nom string) (*Category, error)
	Update(id int64, nom string) (*Category, error)
	Delete(id int64) (*Category, error)
}

// Subcategory belongs to exactly one category; the parent link is fixed at
// creation time and never updated.
type Subcategory struct {
	ID         int64
	Nom        string
	CategoryID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SubcategoryRepository interface {
	GetByCategory(categoryID int64) ([]*Subcategory, error)
	GetByID(categoryID, id int64) (*Subcategory, error)
	Create(sub *Subcategory) (*Subcategory, error)
	Update(categoryID, id int64, nom string) (*Subcategory, error)
	Delete(categoryID, id int64) (*Subcategory, error)
}
