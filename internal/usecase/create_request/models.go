package create_request

// Request модель новой заявки на расчет
// Id, статус и штампы времени присваивает сам use case
type Request struct {
	ServiceType       string
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     *string
	AddressLine1      string
	AddressLine2      *string
	City              string
	State             string
	Zip               string
	Details           string
	PreferredDateFrom *string // yyyy-mm-dd
	PreferredDateTo   *string // yyyy-mm-dd
}
