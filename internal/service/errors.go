package service

import "errors"

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrSelfRemoval = errors.New("admin cannot remove themselves")
)
