package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"agriatoo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// keepAliveInterval spaces out SSE comment frames so idle connections
// survive proxies that reap silent streams.
const keepAliveInterval = 30 * time.Second

// AlertStreamHandler streams alert events to the dashboard over
// Server-Sent Events.
type AlertStreamHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewAlertStreamHandler is the constructor for AlertStreamHandler, injected by Fx.
func NewAlertStreamHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *AlertStreamHandler {
	return &AlertStreamHandler{
		uc:     uc,
		logger: logger,
	}
}

// Stream subscribes the connection to the seller's alert engine and
// forwards every alert event as an SSE frame until the client drops.
func (h *AlertStreamHandler) Stream(c echo.Context) error {
	sellerID, err := getSellerID(c)
	if err != nil {
		return err
	}

	engine, err := h.uc.EngineFor(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	events, cancel := engine.Subscribe()
	defer cancel()

	w := c.Response()
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	// Replay the currently-visible alerts so a reconnecting client does
	// not miss alerts shown before it subscribed.
	for _, alert := range engine.VisibleAlerts() {
		event := usecase.AlertEvent{
			Kind:      usecase.AlertShown,
			OrderID:   alert.Order.OrderID,
			Order:     &alert.Order,
			Sound:     false,
			Timestamp: alert.ShownAt,
		}
		if err := writeEvent(w, &event); err != nil {
			return nil
		}
	}
	w.Flush()

	h.logger.Debug("Alert stream opened", slog.String("sellerID", sellerID))

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("Alert stream closed", slog.String("sellerID", sellerID))

			return nil
		case event, ok := <-events:
			if !ok {
				// Engine stopped (logout or shutdown).
				return nil
			}
			if err := writeEvent(w, &event); err != nil {
				return nil
			}
			w.Flush()
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// writeEvent serializes one alert event as an SSE data frame.
func writeEvent(w *echo.Response, event *usecase.AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Kind, payload)

	return err
}
