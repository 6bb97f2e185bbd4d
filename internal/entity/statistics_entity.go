package entity

// Statistics is an aggregate snapshot of stored data, used by the
// admin dashboard.
type Statistics struct {
	TotalCharts     int64 `json:"totalCharts"`
	TotalNarratives int64 `json:"totalNarratives"`
	ActiveSessions  int64 `json:"activeSessions"`
	UniqueUsers     int64 `json:"uniqueUsers"`
}
