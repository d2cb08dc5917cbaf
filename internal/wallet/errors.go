package wallet

import "errors"

var (
	ErrDepositNotFound   = errors.New("deposit not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrUnsupportedCoin   = errors.New("unsupported coin")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrTxHashRequired    = errors.New("transaction hash is required")
	ErrInvalidTransition = errors.New("deposit cannot move to that status")
)
