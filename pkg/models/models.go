package models

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Timestamps are Unix milliseconds, UTC.

type PortfolioItem struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title" validate:"required"`
	Description string `json:"description,omitempty" db:"description"`
	FileURL     string `json:"file_url" db:"file_url"`
	FileType    string `json:"file_type" db:"file_type"` // "image" or "video"
	Category    string `json:"category" db:"category"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
	UpdatedAt   int64  `json:"updated_at,omitempty" db:"updated_at"`
}

type CatalogueItem struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name" validate:"required"`
	Description string `json:"description,omitempty" db:"description"`
	Price       string `json:"price,omitempty" db:"price"`
	MediaURL    string `json:"media_url,omitempty" db:"media_url"`
	IsActive    bool   `json:"is_active" db:"is_active"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
	UpdatedAt   int64  `json:"updated_at,omitempty" db:"updated_at"`
}

// Contact is a singleton: at most one record is meaningful.
type Contact struct {
	ID        int64  `json:"id" db:"id"`
	Phone     string `json:"phone,omitempty" db:"phone"`
	Whatsapp  string `json:"whatsapp,omitempty" db:"whatsapp"`
	Address   string `json:"address,omitempty" db:"address"`
	MapsURL   string `json:"maps_url,omitempty" db:"maps_url"`
	Email     string `json:"email,omitempty" db:"email"`
	UpdatedAt int64  `json:"updated_at,omitempty" db:"updated_at"`
}

type Admin struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	IsActive     bool   `json:"is_active" db:"is_active"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
}
