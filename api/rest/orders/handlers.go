package orders

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pixelsmith/server/internal/errors"
	"github.com/pixelsmith/server/internal/logger"
	"github.com/pixelsmith/server/internal/mailer"
)

// creates the handler for order submissions. Orders are not
// content-producing, so the policy gate does not apply here.
func Handler(mail mailer.Mailer, ordersTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		orderRef := uuid.NewString()

		subject := req.Subject
		if subject == "" {
			subject = "New order submission"
		}

		attachments := make([]mailer.Attachment, 0, len(req.Attachments))
		for _, a := range req.Attachments {
			attachments = append(attachments, mailer.Attachment{
				Filename: a.Filename,
				Content:  a.Content,
			})
		}

		msg := mailer.Message{
			To:          ordersTo,
			Subject:     fmt.Sprintf("%s [%s]", subject, orderRef),
			HTMLBody:    buildOrderBody(orderRef, req),
			Attachments: attachments,
		}

		if err := mail.Send(c.Request.Context(), msg); err != nil {
			logger.ErrorErr(err, "failed to send order email",
				"order_ref", orderRef,
			)

			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "order_delivery_failed",
				"message": "order could not be submitted, please try again",
			})
			return
		}

		logger.Info("order submitted",
			"order_ref", orderRef,
			"attachments", len(req.Attachments),
		)

		c.JSON(http.StatusOK, Response{
			OrderRef: orderRef,
			Sent:     true,
		})
	}
}

// renders the order email body. Submitted values are escaped since they
// end up inside HTML.
func buildOrderBody(orderRef string, req Request) string {
	return fmt.Sprintf(
		"<h2>Order %s</h2><p><b>Name:</b> %s</p><p><b>Email:</b> %s</p><p>%s</p>",
		html.EscapeString(orderRef),
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Message),
	)
}
