package repository

import (
	"context"
	"errors"

	"github.com/linato/linato-pos/internal/domain/entity"
	domainRepo "github.com/linato/linato-pos/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const posSettingKey = "pos"

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) domainRepo.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetOrCreatePos(ctx context.Context, defaultTax, defaultService decimal.Decimal) (*entity.PosSetting, error) {
	var setting entity.PosSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", posSettingKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = entity.PosSetting{
			Key:               posSettingKey,
			TaxRate:           defaultTax,
			ServiceChargeRate: defaultService,
		}
		if err := r.db.WithContext(ctx).Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) Save(ctx context.Context, setting *entity.PosSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}
