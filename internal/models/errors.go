package models

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrBannerNotFound   = errors.New("banner not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrDuplicateNavItem = errors.New("nav item already exists")
	ErrNotTextSection   = errors.New("section is not a text section")
	ErrInvalidDirection = errors.New("direction must be up or down")
)
