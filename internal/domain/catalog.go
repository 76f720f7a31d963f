package domain

// Service represents a bookable salon service
// Длительность фиксируется на момент бронирования и определяет длину слота
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
}

// Provider represents a staff member that can be booked
// Может иметь собственное расписание в портале; при его отсутствии
// используются общие часы работы салона
type Provider struct {
	ID   string
	Name string
}

// Product represents a shop product from the catalog service
type Product struct {
	ID            string
	Name          string
	StripePriceID string
	Variants      []Variant
}

// Variant represents a concrete product option with its stock-keeping id
// ArticleNumber обязателен при отправке checkout-сессии
type Variant struct {
	ArticleNumber string
	StripePriceID string
}
