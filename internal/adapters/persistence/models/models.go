package models

import (
	"time"

	"main-gestdoc/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Users & Auth
// ============================================================

// Profile represents perfiles table (master)
type Profile struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
	Descripcion string `gorm:"size:200" json:"descripcion,omitempty"`
}

func (Profile) TableName() string {
	return "perfiles"
}

// Role resolves the closed role enum from the profile name
func (p *Profile) Role() domain.Role {
	role, ok := domain.ParseRole(p.Nombre)
	if !ok {
		return domain.RoleOperator
	}
	return role
}

// Group represents grupos table (master)
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"size:50;uniqueIndex;not null" json:"nombre"`
	Descripcion string `gorm:"size:200" json:"descripcion,omitempty"`
}

func (Group) TableName() string {
	return "grupos"
}

// User represents usuarios table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:100;not null" json:"nombre"`
	Rut       string    `gorm:"size:20;not null" json:"rut"`
	Correo    string    `gorm:"uniqueIndex;size:100;not null" json:"correo"`
	Telefono  string    `gorm:"size:20" json:"telefono,omitempty"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	ProfileID uint      `gorm:"not null" json:"profile_id"`
	GroupID   *uint     `json:"group_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:ProfileID" json:"perfil,omitempty"`
	Group   *Group   `gorm:"foreignKey:GroupID" json:"grupo,omitempty"`
}

func (User) TableName() string {
	return "usuarios"
}

// Role resolves the user's role from its profile.
// A user without a loaded profile gets the least privileged role.
func (u *User) Role() domain.Role {
	if u.Profile == nil {
		return domain.RoleOperator
	}
	return u.Profile.Role()
}

// UserResponse DTO
type UserResponse struct {
	ID       uint        `json:"id"`
	Nombre   string      `json:"nombre"`
	Rut      string      `json:"rut"`
	Correo   string      `json:"correo"`
	Telefono string      `json:"telefono,omitempty"`
	Role     domain.Role `json:"role"`
	Perfil   *Profile    `json:"perfil,omitempty"`
	Grupo    *Group      `json:"grupo,omitempty"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Rut:      u.Rut,
		Correo:   u.Correo,
		Telefono: u.Telefono,
		Role:     u.Role(),
		Perfil:   u.Profile,
		Grupo:    u.Group,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Clients
// ============================================================

// Client represents clientes table.
// Deletion is a hard removal; documents referencing the client keep
// their denormalized snapshot (no cascade, no referential check).
type Client struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Nombre    string    `gorm:"size:100;not null" json:"nombre"`
	Planta    string    `gorm:"size:100" json:"planta,omitempty"`
	Rut       string    `gorm:"size:20" json:"rut,omitempty"`
	Contacto  string    `gorm:"size:100" json:"contacto,omitempty"`
	Correo    string    `gorm:"size:100" json:"correo,omitempty"`
	Telefono  string    `gorm:"size:20" json:"telefono,omitempty"`
	Direccion string    `gorm:"size:200" json:"direccion,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Client) TableName() string {
	return "clientes"
}

// ============================================================
// Activity log
// ============================================================

// ActivityLog represents actividad table.
// The table behaves as a ring: only the most recent entries are retained
// (see repositories.ActivityLogCapacity).
type ActivityLog struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Type        domain.ActivityType `gorm:"size:20;not null" json:"type"`
	Description string              `gorm:"size:500;not null" json:"description"`
	UserName    string              `gorm:"size:100;not null" json:"user"`
	CreatedAt   time.Time           `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (ActivityLog) TableName() string {
	return "actividad"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Profile{},
		&Group{},
		&User{},
		&RefreshToken{},
		&Client{},
		&Budget{},
		&PurchaseOrder{},
		&WorkOrder{},
		&Invoice{},
		&DocumentItem{},
		&StatusHistory{},
		&ManagedStatusConfig{},
		&ActivityLog{},
	)
}
