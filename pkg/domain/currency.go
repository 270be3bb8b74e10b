package domain

import "time"

// Currency global market statistics of an asset.
type Currency struct {
	Key                 string       `json:"key"`
	Name                string       `json:"name"`
	NameEn              string       `json:"name_en"`
	Rank                int          `json:"rank"`
	Dominance           NumberString `json:"dominance"`
	Volume24h           NumberString `json:"volume_24h"`
	MarketCap           NumberString `json:"market_cap"`
	ATH                 NumberString `json:"ath"`
	ATHChangePercentage NumberString `json:"ath_change_percentage"`
	ATHDate             time.Time    `json:"ath_date"`
	Price               NumberString `json:"price"`
	DailyHighPrice      NumberString `json:"daily_high_price"`
	DailyLowPrice       NumberString `json:"daily_low_price"`
	WeeklyHighPrice     NumberString `json:"weekly_high_price"`
	WeeklyLowPrice      NumberString `json:"weekly_low_price"`
	PercentChange1h     NumberString `json:"percent_change_1h"`
	PercentChange24h    NumberString `json:"percent_change_24h"`
	PercentChange7d     NumberString `json:"percent_change_7d"`
	PercentChange14d    NumberString `json:"percent_change_14d"`
	PercentChange30d    NumberString `json:"percent_change_30d"`
	PercentChange60d    NumberString `json:"percent_change_60d"`
	PercentChange200d   NumberString `json:"percent_change_200d"`
	PercentChange1y     NumberString `json:"percent_change_1y"`
	PriceChange24h      NumberString `json:"price_change_24h"`
	PriceChange7d       NumberString `json:"price_change_7d"`
	PriceChange14d      NumberString `json:"price_change_14d"`
	PriceChange30d      NumberString `json:"price_change_30d"`
	PriceChange60d      NumberString `json:"price_change_60d"`
	PriceChange200d     NumberString `json:"price_change_200d"`
	PriceChange1y       NumberString `json:"price_change_1y"`
	MaxSupply           NumberString `json:"max_supply"`
	TotalSupply         NumberString `json:"total_supply"`
	CirculatingSupply   NumberString `json:"circulating_supply"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}
