package loot

import (
	"time"

	"github.com/Hosea1989/CouplesQuest-App-sub001/internal/rng"
)

// ShopStock is one day's generated shop inventory.
type ShopStock struct {
	Date  time.Time
	Items []Item
}

// DailyStockSize is how many items the shop offers per day.
const DailyStockSize = 6

// DailyStock generates the shop inventory for a calendar date. The
// stream is seeded from the date, so every call for the same day
// produces identical stock regardless of when it runs.
func (ro *Roller) DailyStock(day time.Time, tier, luck int) ShopStock {
	src := rng.NewDaily(day)

	items := make([]Item, 0, DailyStockSize)
	for i := 0; i < DailyStockSize; i++ {
		// One slot per stock position keeps the daily lineup varied.
		slot := Slots[i%len(Slots)]
		items = append(items, ro.RollForSlot(tier, luck, slot, src))
	}

	y, m, d := day.Date()
	return ShopStock{
		Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Items: items,
	}
}
