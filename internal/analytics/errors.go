package analytics

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrSaleNotFound  = errors.New("sale not found")
)
