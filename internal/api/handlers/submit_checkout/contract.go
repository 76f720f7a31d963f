package submit_checkout

import (
	"context"

	submitCheckout "github.com/valle1212i/Glow-SessionService/internal/usecase/submit_checkout"
)

type SubmitCheckoutUseCase interface {
	Execute(ctx context.Context, req *submitCheckout.Request) (*submitCheckout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
