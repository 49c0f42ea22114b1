package models

type HistoryType string

const (
	HistoryIn  HistoryType = "IN"
	HistoryOut HistoryType = "OUT"
)

// TransactionHistoryItem is derived on demand and never stored. Volume is a
// magnitude; direction is carried by Type.
type TransactionHistoryItem struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Type      HistoryType `json:"type"`
	Reference string      `json:"reference"`
	Info      string      `json:"info"`
	Volume    int         `json:"volume"`
}
