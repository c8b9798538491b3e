package models

// ItemSale adalah total terjual satu item selama hari berjalan.
type ItemSale struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// SalesSummary adalah agregat read-only dari ledger, dipakai rekap admin di
// chat dan endpoint laporan ops.
type SalesSummary struct {
	TransactionCount int           `json:"transaction_count"`
	TotalRevenue     int           `json:"total_revenue"`
	CashTotal        int           `json:"cash_total"`
	QRISTotal        int           `json:"qris_total"`
	ItemsSold        []ItemSale    `json:"items_sold"`
	Recent           []Transaction `json:"recent"`
}
