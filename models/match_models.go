package models

type CreateMatchRequest struct {
	TeamA       string `json:"team_a" binding:"required"`
	TeamB       string `json:"team_b" binding:"required"`
	CupsPerSide int    `json:"cups_per_side" binding:"omitempty,min=1,max=20"`
}

type HitRequest struct {
	Team    string `json:"team" binding:"required,oneof=A B"`
	Shooter string `json:"shooter"`
	Cups    int    `json:"cups" binding:"omitempty,min=1,max=10"`
}

type HitResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
}
