package entity

import (
	"time"
)

// Listing 交易对上架观察记录
type Listing struct {
	Id     int64  `gorm:"primaryKey;autoIncrement"`
	Source string `gorm:"uniqueIndex:listing_pair_idx"`
	Symbol string `gorm:"uniqueIndex:listing_pair_idx"`
	// Seed marks records written by the first-run baseline pass.
	Seed   bool      `gorm:"index"`
	SeenAt time.Time `gorm:"index"`
}
