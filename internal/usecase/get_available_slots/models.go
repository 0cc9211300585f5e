package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// Причины недоступности слота
const (
	ReasonLunch       = "Lunch"
	ReasonUnavailable = "Unavailable"
	ReasonPast        = "Past"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата для расчета слотов (без времени)
}

// Response модель ответа со списком слотов на день
type Response struct {
	Date  time.Time // Дата, на которую рассчитаны слоты
	Slots []Slot    // Слоты в хронологическом порядке
}

// Slot модель временного слота
type Slot struct {
	Time      types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Доступен ли слот для записи
	Reason    *string          // Причина недоступности: Lunch, Unavailable или Past
}
