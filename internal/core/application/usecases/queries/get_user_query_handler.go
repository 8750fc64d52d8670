package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}
	p := query.Principal()
	if err := p.Require(access.RoleUser, "view user"); err != nil {
		return UserResponse{}, err
	}
	if p.ID() != query.UserID() && !p.IsAtLeast(access.RoleAdmin) {
		return UserResponse{}, errs.NewAccessDeniedError("view user", "only the account owner or an admin")
	}

	var rows []userRow
	if err := h.db.WithContext(ctx).Raw(userSQL+" AND id = ?", query.UserID()).Scan(&rows).Error; err != nil {
		return UserResponse{}, err
	}
	if len(rows) == 0 {
		return UserResponse{}, errs.NewObjectNotFoundError("user_id", query.UserID())
	}

	return rows[0].toResponse(p)
}
