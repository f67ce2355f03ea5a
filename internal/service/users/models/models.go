package models

// AddCreditRequest запрос на пополнение баланса
type AddCreditRequest struct {
	Amount float64 `json:"amount"`
}

// BalanceResponse ответ с текущим балансом пользователя
type BalanceResponse struct {
	UserID int64   `json:"userId"`
	Credit float64 `json:"credit"`
}
