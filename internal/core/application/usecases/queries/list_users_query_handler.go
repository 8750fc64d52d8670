package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/access"

	"gorm.io/gorm"
)

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Principal().Require(access.RoleAdmin, "list users"); err != nil {
		return nil, err
	}

	var rows []userRow
	if err := h.db.WithContext(ctx).Raw(userSQL + " ORDER BY id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]UserResponse, 0, len(rows))
	for _, row := range rows {
		u, err := row.toResponse(query.Principal())
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
