package availability

import "errors"

// ErrSuperseded возвращается, когда более новый запрос того же клиента
// вытеснил текущий. Результат вытесненного запроса не публикуется
var ErrSuperseded = errors.New("availability: lookup superseded by a newer request")
