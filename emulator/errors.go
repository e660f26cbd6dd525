package emulator

import "errors"

var (
	ErrExecutorStop     = errors.New("executor stop")
	ErrHookCallbackType = errors.New("hook callback type exception")
	ErrAddressInvalid   = errors.New("address invalid")
)
