package create_request

import "fmt"

// validateRequest валидирует входные данные заявки
// Подробная валидация полей формы - на стороне клиента; здесь только
// минимум, без которого заявка бессмысленна
func validateRequest(req *Request) error {
	if req.ServiceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	return nil
}
