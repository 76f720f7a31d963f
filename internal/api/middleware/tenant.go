package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// HeaderTenantID заголовок, через который клиент передает арендатора.
// Значение никогда не подставляется по умолчанию на этом уровне:
// отсутствие заголовка - ошибка клиента
const HeaderTenantID = "X-Tenant-ID"

type tenantCtxKey struct{}

// Tenant требует заголовок X-Tenant-ID и кладет его значение в контекст
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenant := r.Header.Get(HeaderTenantID)
		if tenant == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "заголовок X-Tenant-ID обязателен",
			})
			return
		}

		ctx := context.WithValue(r.Context(), tenantCtxKey{}, tenant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantFromContext возвращает арендатора, положенного middleware Tenant
func TenantFromContext(ctx context.Context) (string, bool) {
	tenant, ok := ctx.Value(tenantCtxKey{}).(string)
	return tenant, ok
}
