package domain

// Stats is the database status snapshot shown on the admin dashboard and the
// status endpoint.
type Stats struct {
	TableCounts          map[string]int64 `json:"table_counts"`
	TotalCommissionCents int64            `json:"total_commission_cents"`
}
