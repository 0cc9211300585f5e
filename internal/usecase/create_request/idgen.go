package create_request

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

var requestIDRe = regexp.MustCompile(domain.RequestIDPattern)

// nextRequestID выводит следующий человекочитаемый id заявки из уже
// существующих записей: REQ-<год>-<4-значный номер>
// Номер - максимум среди существующих для текущего года плюс один
// (0001, если для года записей нет). Пропуски не переиспользуются,
// нумерация каждого года начинается заново - коллизии между годами
// структурно невозможны благодаря году в самом id
func nextRequestID(existing []domain.QuoteRequest, year int) string {
	maxSeq := 0
	yearStr := strconv.Itoa(year)

	for _, r := range existing {
		m := requestIDRe.FindStringSubmatch(r.ID)
		if m == nil || m[1] != yearStr {
			continue
		}
		seq, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s-%d-%04d", domain.RequestIDPrefix, year, maxSeq+1)
}
