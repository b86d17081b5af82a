package repository

import "errors"

var (
	ErrUserNotFound  = errors.New("repository: user not found")
	ErrGroupNotFound = errors.New("repository: group not found")
	ErrSaleNotFound  = errors.New("repository: sale not found")
)
