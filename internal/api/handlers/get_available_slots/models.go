package get_available_slots

import (
	"github.com/m04kA/SMC-QuoteService/internal/domain"
	slotsUseCase "github.com/m04kA/SMC-QuoteService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// SlotView HTTP модель временного слота
type SlotView struct {
	Time      types.TimeString `json:"time"`
	Available bool             `json:"available"`
	Reason    *string          `json:"reason,omitempty"`
}

// SlotsResponse HTTP модель ответа со слотами на день
type SlotsResponse struct {
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

// ToResponse преобразует результат use case в HTTP модель
func ToResponse(result *slotsUseCase.Response) *SlotsResponse {
	slots := make([]SlotView, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, SlotView{
			Time:      s.Time,
			Available: s.Available,
			Reason:    s.Reason,
		})
	}
	return &SlotsResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
