package settlement

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace/internal/domain"
	"marketplace/internal/metrics"
	"marketplace/internal/stripe"
)

// Handler terminates the provider webhook: verifies the signature over
// the raw body, extracts the correlation key and hands the event to the
// queue. Always answers quickly; the provider retries on non-2xx.
type Handler struct {
	queue         *Queue
	webhookSecret string
	logger        *zap.Logger
}

func NewHandler(queue *Queue, webhookSecret string, logger *zap.Logger) *Handler {
	return &Handler{queue: queue, webhookSecret: webhookSecret, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/webhooks/stripe", h.HandleWebhook)
}

func (h *Handler) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("bad_request").Inc()
		c.String(http.StatusBadRequest, "cannot read body")
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if err := stripe.VerifySignature(payload, sig, h.webhookSecret, time.Now()); err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("bad_signature").Inc()
		h.logger.Warn("webhook signature rejected", zap.Error(err))
		c.String(http.StatusBadRequest, "invalid signature")
		return
	}

	ev, err := stripe.ParseEvent(payload)
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("bad_payload").Inc()
		c.String(http.StatusBadRequest, "invalid payload")
		return
	}

	if ev.Type != stripe.EventCheckoutCompleted {
		metrics.WebhookEventsTotal.WithLabelValues("ignored").Inc()
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	meta := ev.Data.Object.Metadata
	event := Event{Kind: domain.TransactionKind(meta["type"])}
	switch event.Kind {
	case domain.TxRent:
		event.ID = meta["booking_id"]
	case domain.TxSell:
		event.ID = meta["order_id"]
	}

	if event.ID == "" {
		metrics.WebhookEventsTotal.WithLabelValues("ignored").Inc()
		h.logger.Info("webhook event without correlation key", zap.String("session_id", ev.Data.Object.ID))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	h.queue.Enqueue(event)
	metrics.WebhookEventsTotal.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusOK, gin.H{"received": true})
}
