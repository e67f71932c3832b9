package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// Upsert leans on the (user, product, order) unique index.
func (r *ReviewGormRepository) Upsert(ctx context.Context, review model.ProductReview) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "product_id"},
				{Name: "order_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(&review).Error
}

func (r *ReviewGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.ProductReview, error) {
	var reviews []model.ProductReview
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&reviews).Error
	if err != nil {
		return []model.ProductReview{}, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ListRatings(ctx context.Context, productID int64) ([]int64, error) {
	var ratings []int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductReview{}).
		Where("product_id = ?", productID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return []int64{}, err
	}
	return ratings, nil
}

func (r *ReviewGormRepository) CountByProductID(ctx context.Context, productID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductReview{}).
		Where("product_id = ?", productID).
		Count(&n).Error
	return n, err
}
