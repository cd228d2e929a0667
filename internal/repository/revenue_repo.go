package repository

import (
	"context"

	"invoicing-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// All returns the revenue rows in store order.
func (r *RevenueRepository) All(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	err := r.db.WithContext(ctx).Find(&revenue).Error
	return revenue, err
}
