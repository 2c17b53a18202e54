// Package model provides data transfer objects for statistics module.
package model

// TeamStatistics represents auction statistics for one team.
type TeamStatistics struct {
	TeamID        string `json:"team_id"`
	Name          string `json:"name"`
	ShortName     string `json:"short_name"`
	Number        int    `json:"number"`
	BudgetLakh    int64  `json:"budget_lakh"`
	Budget        string `json:"budget"`
	SpentLakh     int64  `json:"spent_lakh"`
	Spent         string `json:"spent"`
	RosterSize    int    `json:"roster_size"`
	Overseas      int    `json:"overseas"`
	Batters       int    `json:"batters"`
	Bowlers       int    `json:"bowlers"`
	AllRounders   int    `json:"all_rounders"`
	Wicketkeepers int    `json:"wicketkeepers"`
	TotalCredits  int    `json:"total_credits"`
}

// TeamsStatisticsResponse represents response for per-team statistics.
type TeamsStatisticsResponse struct {
	Teams []TeamStatistics `json:"teams"`
	Total int              `json:"total"`
}

// AuctionStatistics represents aggregate statistics for the auction pool.
type AuctionStatistics struct {
	TotalPlayers     int    `json:"total_players"`
	SoldPlayers      int    `json:"sold_players"`
	UnsoldPlayers    int    `json:"unsold_players"`
	OverseasSold     int    `json:"overseas_sold"`
	TotalSpentLakh   int64  `json:"total_spent_lakh"`
	TotalSpent       string `json:"total_spent"`
	AveragePriceLakh int64  `json:"average_price_lakh"`
	AveragePrice     string `json:"average_price"`
	TopSalePlayer    string `json:"top_sale_player"`
	TopSaleLakh      int64  `json:"top_sale_lakh"`
	TopSale          string `json:"top_sale"`
}

// AuctionStatisticsResponse represents response for auction statistics.
type AuctionStatisticsResponse struct {
	Statistics AuctionStatistics `json:"statistics"`
}
