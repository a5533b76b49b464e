package state

import "errors"

var (
	// ErrNotInitialized возвращается (через panic), когда Store используется без NewStore
	ErrNotInitialized = errors.New("state: store used before initialization")
)
