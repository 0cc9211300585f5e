package appointments

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// validateSlot проверяет формат даты и 30-минутную гранулярность времени
// Доступность слота сервером НЕ проверяется: календарь доступности -
// подсказка для клиента, а не серверное ограничение
func validateSlot(date string, t types.TimeString) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	parsed, err := t.ToTime()
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, t)
	}
	if parsed.Minute()%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: %q is not on a %d-minute boundary", ErrInvalidTime, t, domain.SlotDurationMinutes)
	}

	return nil
}
