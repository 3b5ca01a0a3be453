package repository

import (
	"time"

	"go-backoffice-console/internal/model"

	"gorm.io/gorm"
)

type ChangeLogRepository interface {
	Create(record *model.ChangeRecord) error
	FindRecent(limit int) ([]model.ChangeRecord, error)
	GetActivity(startDate, endDate time.Time) ([]ChangeActivity, error)
}

// ChangeActivity counts changes per entity and operation.
type ChangeActivity struct {
	Entity string         `json:"entity"`
	Op     model.ChangeOp `json:"op"`
	Count  int64          `json:"count"`
}

type changeLogRepo struct {
	db *gorm.DB
}

func NewChangeLogRepo(db *gorm.DB) ChangeLogRepository {
	return &changeLogRepo{db}
}

func (r *changeLogRepo) Create(record *model.ChangeRecord) error {
	return r.db.Create(record).Error
}

func (r *changeLogRepo) FindRecent(limit int) ([]model.ChangeRecord, error) {
	var records []model.ChangeRecord
	err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

func (r *changeLogRepo) GetActivity(startDate, endDate time.Time) ([]ChangeActivity, error) {
	var results []ChangeActivity
	err := r.db.Model(&model.ChangeRecord{}).
		Select("entity, op, COUNT(*) as count").
		Where("at BETWEEN ? AND ?", startDate, endDate).
		Group("entity, op").
		Order("entity ASC, op ASC").
		Scan(&results).Error
	return results, err
}
