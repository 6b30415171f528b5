package handler

import (
	"time"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// UserView is the public projection of an account. It never carries password or reset material.
type UserView struct {
	ID               uuid.UUID   `json:"id"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	Username         string      `json:"username"`
	Email            string      `json:"email"`
	Role             entity.Role `json:"role"`
	Phone            string      `json:"phone,omitempty"`
	Avatar           string      `json:"avatar,omitempty"`
	IsEmailConfirmed bool        `json:"isEmailConfirmed"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

func newUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Username:         u.Username,
		Email:            u.Email,
		Role:             u.Role,
		Phone:            u.Phone,
		Avatar:           u.Avatar,
		IsEmailConfirmed: u.IsEmailConfirmed,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
