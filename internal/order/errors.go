package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInvalidTransition = errors.New("order cannot move to that status")
)
