package submit_checkout

import (
	"context"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/catalogservice"
)

// resolveVariants заполняет VariantID для каждой позиции корзины.
// Поиск идёт в два прохода: сначала по stripePriceId по всему каталогу,
// затем по productId со сканированием вариантов конкретного продукта.
// Разрешение строго "всё или ничего": хотя бы одна неразрешённая позиция
// прерывает оформление до создания платежной сессии
func (uc *UseCase) resolveVariants(ctx context.Context, tenant string, items []domain.CartItem) error {
	var products []catalogservice.Product
	productsLoaded := false

	var unresolved []string

	for i := range items {
		if items[i].VariantID != "" {
			continue
		}

		if !productsLoaded {
			loaded, err := uc.catalog.ListProducts(ctx, tenant)
			if err != nil {
				uc.logger.Error("submit_checkout: failed to list products for variant resolution: %v", err)
				return ErrUpstreamUnavailable
			}
			products = loaded
			productsLoaded = true
		}

		// 1. Поиск по stripePriceId среди всех вариантов каталога
		if v := findByPriceID(products, items[i].StripePriceID); v != nil {
			items[i].VariantID = v.ArticleNumber
			continue
		}

		// 2. Поиск по productId с полевым сопоставлением вариантов
		if items[i].ProductID != "" {
			v, err := uc.findByProductID(ctx, tenant, products, &items[i])
			if err != nil {
				return err
			}
			if v != nil {
				items[i].VariantID = v.ArticleNumber
				continue
			}
		}

		label := items[i].ProductID
		if label == "" {
			label = items[i].StripePriceID
		}
		unresolved = append(unresolved, label)
	}

	if len(unresolved) > 0 {
		return &MissingVariantError{ProductIDs: unresolved}
	}

	return nil
}

func findByPriceID(products []catalogservice.Product, priceID string) *catalogservice.Variant {
	if priceID == "" {
		return nil
	}

	for pi := range products {
		for vi := range products[pi].Variants {
			if products[pi].Variants[vi].StripePriceID == priceID {
				return &products[pi].Variants[vi]
			}
		}
	}

	return nil
}

func (uc *UseCase) findByProductID(ctx context.Context, tenant string, products []catalogservice.Product, item *domain.CartItem) (*catalogservice.Variant, error) {
	var product *catalogservice.Product

	for pi := range products {
		if products[pi].ID == item.ProductID {
			product = &products[pi]
			break
		}
	}

	if product == nil {
		loaded, err := uc.catalog.GetProduct(ctx, tenant, item.ProductID)
		if err != nil {
			// Отсутствие продукта не фатально на этом шаге,
			// позиция попадет в список неразрешённых
			uc.logger.Warn("submit_checkout: product %s lookup failed: %v", item.ProductID, err)
			return nil, nil
		}
		product = loaded
	}

	for vi := range product.Variants {
		if product.Variants[vi].StripePriceID == item.StripePriceID {
			return &product.Variants[vi], nil
		}
	}

	// Единственный вариант продукта однозначен и без совпадения цены
	if len(product.Variants) == 1 {
		return &product.Variants[0], nil
	}

	return nil, nil
}
