package create_request

import "errors"

var (
	// ErrSubmissionFailed возвращается при симулированном сбое отправки
	// Заявка при этом не сохраняется; клиент должен повторить вручную
	ErrSubmissionFailed = errors.New("simulated submission failure")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
