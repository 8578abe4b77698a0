// Package counterrepo stores the quote number sequence in a single-row table.
package counterrepo

// counterRowID is the primary key of the only counter row.
const counterRowID = 1

// CounterDTO is the quote_counters table row.
type CounterDTO struct {
	ID           int `gorm:"primaryKey;autoIncrement:false"`
	NextSequence int `gorm:"not null;default:0"`
}

func (CounterDTO) TableName() string {
	return "quote_counters"
}
