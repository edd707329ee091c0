package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleWorker
}

type Company struct {
	ID       uuid.UUID
	Name     string
	Currency currency.Unit

	CreatedAt time.Time
}

type User struct {
	ID        uuid.UUID
	Email     string
	CompanyID uuid.UUID
	Role      Role

	CreatedAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
