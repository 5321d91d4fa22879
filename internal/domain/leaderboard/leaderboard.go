package leaderboard

type Record struct {
	UserID      string `json:"user_id" bson:"user_id"`
	Points      int    `json:"points" bson:"points"`
	GamesPlayed int    `json:"games_played" bson:"games_played"`
}

type UpdateRequest struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
	Games  int    `json:"games"`
}

type TopRequest struct {
	N int `json:"n"`
}

type UserRequest struct {
	UserID string `json:"user_id"`
}

type RankResponse struct {
	UserID string `json:"user_id"`
	Rank   int64  `json:"rank"`
	Points int    `json:"points"`
}
