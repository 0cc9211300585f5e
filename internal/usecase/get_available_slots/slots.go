package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// dateHash детерминированный хеш строки даты "YYYY-MM-DD"
// Порядко-чувствительное накопление h = h*31 + символ в 32-битной
// арифметике с переполнением; результат - неотрицательное число.
// Одна и та же дата всегда дает один и тот же хеш, между процессами
// и запусками
func dateHash(s string) int64 {
	var h int32
	for _, c := range []byte(s) {
		h = h*31 + int32(c)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// generateCandidateTimes возвращает все кандидатные времена слотов дня:
// каждые 30 минут с 09:00 до 16:00 (не включая), всего 14
func generateCandidateTimes() []types.TimeString {
	times := make([]types.TimeString, 0, domain.SlotsPerDay)
	for h := domain.SlotOpenHour; h < domain.SlotCloseHour; h++ {
		times = append(times,
			types.TimeString(fmt.Sprintf("%02d:00", h)),
			types.TimeString(fmt.Sprintf("%02d:30", h)),
		)
	}
	return times
}

// lunchIndexes возвращает индексы обеденных слотов в кандидатном списке
func lunchIndexes(times []types.TimeString) map[int]struct{} {
	lunch := make(map[int]struct{}, len(domain.LunchTimes))
	for i, t := range times {
		for _, l := range domain.LunchTimes {
			if t == l {
				lunch[i] = struct{}{}
			}
		}
	}
	return lunch
}

// blockedIndexes выбирает 2-4 дополнительных (не обеденных) заблокированных
// слота чистой функцией от хеша даты
// Количество - hash mod 3 + 2; кандидатные индексы выводятся из
// последовательных битовых сдвигов хеша, нормированных в диапазон
// индексов слотов; уже выбранные и обеденные индексы пропускаются
func blockedIndexes(hash int64, times []types.TimeString, lunch map[int]struct{}) map[int]struct{} {
	count := int(hash%3) + domain.MinBlockedSlots

	blocked := make(map[int]struct{}, count)
	for shift := 0; len(blocked) < count && shift < len(times); shift++ {
		idx := int(((hash >> uint(shift)) & 0xff) * int64(len(times)) / 256)

		if _, isLunch := lunch[idx]; isLunch {
			continue
		}
		if _, taken := blocked[idx]; taken {
			continue
		}
		blocked[idx] = struct{}{}
	}

	return blocked
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isWeekend проверяет, что дата выпадает на субботу или воскресенье
func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
