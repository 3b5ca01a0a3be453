package model

import "time"

type ChangeOp string

const (
	OpReplace ChangeOp = "replace"
	OpUpsert  ChangeOp = "upsert"
	OpRemove  ChangeOp = "remove"
	OpSelect  ChangeOp = "select"
)

// Change is one entry of a store's changelog.
type Change struct {
	Seq    uint64    `json:"seq"`
	Entity string    `json:"entity"`
	Op     ChangeOp  `json:"op"`
	IDs    []string  `json:"ids"`
	At     time.Time `json:"at"`
}

// ChangeRecord is the persisted form of a Change.
type ChangeRecord struct {
	BaseModel
	Seq    uint64    `gorm:"not null;index" json:"seq"`
	Entity string    `gorm:"type:varchar(20);not null;index" json:"entity"`
	Op     ChangeOp  `gorm:"type:varchar(10);not null" json:"op"`
	IDs    []string  `gorm:"serializer:json" json:"ids"`
	At     time.Time `gorm:"not null" json:"at"`
}

func NewChangeRecord(c Change) *ChangeRecord {
	return &ChangeRecord{Seq: c.Seq, Entity: c.Entity, Op: c.Op, IDs: c.IDs, At: c.At}
}
