package model

type DashboardSummary struct {
	CustomerCount int64          `json:"customer_count"`
	AccountCount  int64          `json:"account_count"`
	TotalBalance  int64          `json:"total_balance"`
	Recent        []*Transaction `json:"recent"`
}
