package formatter

import (
	"sort"

	"github.com/shopspring/decimal"

	"marketplace-bot/internal/model"
)

// CoinTotal is the summed crypto amount of one coin.
type CoinTotal struct {
	Coin   string
	Amount decimal.Decimal
}

// StatusCount is the number of deposits in one status.
type StatusCount struct {
	Status model.DepositStatus
	Count  int
}

// DailySummary is the aggregate behind the daily report.
type DailySummary struct {
	Total        int
	Confirmed    int
	TotalUSD     decimal.Decimal
	ConfirmedUSD decimal.Decimal
	ByCoin       []CoinTotal
	ByStatus     []StatusCount
	Other        int
}

// Summarize aggregates deposits. ByCoin is sorted by coin code and ByStatus
// follows model.DepositStatuses, so the output is stable for equal input.
func Summarize(deposits []model.Deposit) DailySummary {
	s := DailySummary{
		TotalUSD:     decimal.Zero,
		ConfirmedUSD: decimal.Zero,
	}

	coins := make(map[string]decimal.Decimal)
	statuses := make(map[model.DepositStatus]int, len(model.DepositStatuses))

	for _, d := range deposits {
		s.Total++
		s.TotalUSD = s.TotalUSD.Add(d.AmountUSD)
		if d.Status == model.DepositStatusConfirmed {
			s.Confirmed++
			s.ConfirmedUSD = s.ConfirmedUSD.Add(d.AmountUSD)
		}

		coin := normalizeCoin(d.Coin)
		coins[coin] = coins[coin].Add(d.Amount)

		if _, known := statusSymbols[d.Status]; known {
			statuses[d.Status]++
		} else {
			s.Other++
		}
	}

	for coin, amount := range coins {
		s.ByCoin = append(s.ByCoin, CoinTotal{Coin: coin, Amount: amount})
	}
	sort.Slice(s.ByCoin, func(i, j int) bool { return s.ByCoin[i].Coin < s.ByCoin[j].Coin })

	for _, st := range model.DepositStatuses {
		s.ByStatus = append(s.ByStatus, StatusCount{Status: st, Count: statuses[st]})
	}

	return s
}
