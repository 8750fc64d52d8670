// Package userrepo persists user accounts.
package userrepo

import (
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/user"
)

// UserDTO is the row of the users table. role holds the wire name of the role.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	Address      string `gorm:"not null"`
	Role         string `gorm:"size:16;not null;default:user"`
	IsDeleted    bool   `gorm:"not null;default:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Address:      u.Address(),
		Role:         u.Role().String(),
		IsDeleted:    u.IsDeleted(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := access.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(
		dto.ID, dto.Username, dto.PasswordHash, dto.FirstName, dto.LastName, dto.Address, role, dto.IsDeleted,
	)
}
