package postgres

import (
	"context"

	"github.com/psiconervio/agente-ia/internal/models"
	"gorm.io/gorm"
)

type InteractionRepo interface {
	Insert(ctx context.Context, rec *models.Interaction) error
	ListByUser(ctx context.Context, userID string) ([]models.Interaction, error)
	DeleteAll(ctx context.Context) error
}

type interactionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) InteractionRepo {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) Insert(ctx context.Context, rec *models.Interaction) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// ListByUser returns the user's full transcript, oldest first.
func (r *interactionRepo) ListByUser(ctx context.Context, userID string) ([]models.Interaction, error) {
	var rows []models.Interaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *interactionRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Interaction{}).Error
}
