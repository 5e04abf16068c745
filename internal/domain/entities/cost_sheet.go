package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostSheet is the exported view of both ledgers of one import.
type CostSheet struct {
	ImportID    string
	CarLabel    string
	ClientName  string
	Status      ImportStatus
	Delivery    string
	GeneratedAt time.Time
	Rows        []CostSheetRow
	TotalReal   decimal.Decimal
	TotalClient decimal.Decimal
}

// CostSheetRow is one cost name; Margin is Client minus Real.
type CostSheetRow struct {
	Name   string
	Real   decimal.Decimal
	Client decimal.Decimal
	Margin decimal.Decimal
}

func (s CostSheet) TotalMargin() decimal.Decimal {
	return s.TotalClient.Sub(s.TotalReal)
}
