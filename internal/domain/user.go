package domain

import "time"

type User struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CoinBalance  int32     `json:"coin_balance"`
	CreatedAt    time.Time `json:"created_at"`
}
