package catalogservice

// Product модель продукта из каталога портала
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StripePriceID string    `json:"stripePriceId"`
	Variants      []Variant `json:"variants"`
}

// Variant модель варианта продукта с артикулом
type Variant struct {
	ArticleNumber string `json:"articleNumber"`
	StripePriceID string `json:"stripePriceId"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// productsResponse обертка списка продуктов
type productsResponse struct {
	Products []Product `json:"products"`
}
