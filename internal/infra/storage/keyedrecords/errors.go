package keyedrecords

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("keyedrecords.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("keyedrecords.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("keyedrecords.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации записей
	ErrEncode = errors.New("keyedrecords.repository: failed to encode records")

	// ErrDecode возвращается при ошибке десериализации записей
	ErrDecode = errors.New("keyedrecords.repository: failed to decode records")
)
