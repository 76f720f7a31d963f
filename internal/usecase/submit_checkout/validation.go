package submit_checkout

import (
	"fmt"
	"strings"
)

func validateRequest(req *Request) error {
	if req.Tenant == "" {
		return fmt.Errorf("%w: tenant is required", ErrInvalidInput)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}

	if len(req.Items) > maxCartItems {
		return fmt.Errorf("%w: cart exceeds %d items", ErrInvalidInput, maxCartItems)
	}

	for i, item := range req.Items {
		if item.StripePriceID == "" && item.ProductID == "" {
			return fmt.Errorf("%w: item %d has neither stripePriceId nor productId", ErrInvalidInput, i)
		}

		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", ErrInvalidInput, i)
		}

		if item.Quantity > maxQuantityPerItem {
			return fmt.Errorf("%w: item %d exceeds max quantity %d", ErrInvalidInput, i, maxQuantityPerItem)
		}
	}

	if req.CustomerEmail != "" && !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	return nil
}
