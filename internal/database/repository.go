package database

import "gorm.io/gorm"

type RecordingRepository struct {
	db *gorm.DB
}

func NewRecordingRepository(db *gorm.DB) *RecordingRepository {
	return &RecordingRepository{db: db}
}

func (r *RecordingRepository) CreateRecording(rec *Recording) error {
	return r.db.Create(rec).Error
}

func (r *RecordingRepository) GetRecordingByID(id uint) (*Recording, error) {
	var rec Recording
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecordingRepository) ListRecordings(limit, offset int) ([]Recording, error) {
	var recs []Recording
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *RecordingRepository) UpdateRecordingStatus(id uint, status, errorText string) error {
	return r.db.Model(&Recording{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"error_text": errorText,
		}).Error
}
