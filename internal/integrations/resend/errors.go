package resend

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("resend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Resend API
	ErrInvalidResponse = errors.New("resend client: invalid response")
)
