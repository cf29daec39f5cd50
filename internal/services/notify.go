package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

const notifyTimeout = 10 * time.Second

// dispatchConfirmation sends the order confirmation email off the request
// path. The returned channel reports the send result for callers that want
// it (tests, mostly); a failure is logged and never propagated to the
// customer, the committed order stands either way.
func dispatchConfirmation(log *zap.Logger, mailer Mailer, order *model.Order) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		err := mailer.SendOrderConfirmation(ctx, order)
		if err != nil {
			log.Warn("order confirmation email failed",
				zap.String("order_id", order.ID),
				zap.String("email", order.Customer.Email),
				zap.Error(err))
			errc <- err
			return
		}
		log.Info("order confirmation email sent",
			zap.String("order_id", order.ID),
			zap.String("email", order.Customer.Email))
	}()
	return errc
}
