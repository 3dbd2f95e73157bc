package users

import (
	"context"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Repository is the storage contract the credential service depends on:
// single-row lookup by email and single-row insert. Both are atomic at the
// database level; no multi-statement transactions are required.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
