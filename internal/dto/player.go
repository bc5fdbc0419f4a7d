package dto

type PlayerResponseDTO struct {
	Name  string `json:"name" example:"Alice"`
	Money int64  `json:"money" example:"1000"`
	Level int    `json:"level" example:"1"`
}

type UpgradeResponseDTO struct {
	UserID int   `json:"user_id" example:"1"`
	Money  int64 `json:"money" example:"850"`
	Level  int   `json:"level" example:"2"`
}
