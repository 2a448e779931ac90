package repo

import (
	"context"

	"github.com/sumever1205/listing-watch/internal/entity"
	"gorm.io/gorm"
)

// Pair identity of one observation, used for known-pair membership checks.
type Pair struct {
	Source string
	Symbol string
}

type ListingRepo interface {
	Create(ctx context.Context, listing entity.Listing) error
	CreateBatch(ctx context.Context, listings []entity.Listing) error
	CountAll(ctx context.Context) (int64, error)
	FindPairs(ctx context.Context) ([]Pair, error)
	FindRecent(ctx context.Context, limit int) ([]entity.Listing, error)
	FindRecentBySource(ctx context.Context, source string, limit int) ([]entity.Listing, error)
}

type listingRepo struct {
	db *gorm.DB
}

func NewListingRepo(db *gorm.DB) ListingRepo {
	return &listingRepo{
		db: db,
	}
}

func (r *listingRepo) Create(ctx context.Context, listing entity.Listing) error {
	return r.db.WithContext(ctx).Create(&listing).Error
}

func (r *listingRepo) CreateBatch(ctx context.Context, listings []entity.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&listings).Error
}

func (r *listingRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Listing{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *listingRepo) FindPairs(ctx context.Context) ([]Pair, error) {
	var pairs []Pair
	err := r.db.WithContext(ctx).Model(&entity.Listing{}).
		Select("source", "symbol").Find(&pairs).Error
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

func (r *listingRepo) FindRecent(ctx context.Context, limit int) ([]entity.Listing, error) {
	var listings []entity.Listing
	err := r.db.WithContext(ctx).
		Order("seen_at DESC, id DESC").Limit(limit).Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepo) FindRecentBySource(ctx context.Context, source string, limit int) ([]entity.Listing, error) {
	var listings []entity.Listing
	err := r.db.WithContext(ctx).
		Where("source = ? AND seed = ?", source, false).
		Order("seen_at DESC, id DESC").Limit(limit).Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}
