package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/thereayou/classlink/internal/models"
)

type LoginRequest struct {
	Email    string             `json:"email" binding:"required,email"`
	Password string             `json:"password" binding:"required"`
	Kind     models.AccountKind `json:"kind" binding:"required,oneof=Teacher Parent"`
}

type LoginResponse struct {
	Token          string             `json:"token"`
	TokenExpiresAt time.Time          `json:"tokenExpiresAt"`
	ID             uuid.UUID          `json:"id"`
	Kind           models.AccountKind `json:"kind"`
	DisplayName    string             `json:"displayName"`
}

type PrincipalResponse struct {
	ID          uuid.UUID          `json:"id"`
	Kind        models.AccountKind `json:"kind"`
	DisplayName string             `json:"displayName,omitempty"`
}
