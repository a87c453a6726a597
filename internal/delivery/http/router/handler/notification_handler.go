package handler

import (
	"log/slog"
	"net/http"

	"agriatoo/internal/delivery/http/response"
	"agriatoo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for order alert handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// VisibleAlerts returns the seller's currently-visible order alerts,
// oldest first.
func (h *NotificationHandler) VisibleAlerts(c echo.Context) error {
	engine, err := h.engine(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, engine.VisibleAlerts(), "Alerts loaded")
}

// Feed returns the session's notification log and unread count.
func (h *NotificationHandler) Feed(c echo.Context) error {
	engine, err := h.engine(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, engine.Feed(), "Notifications loaded")
}

// MarkRead marks one notification log entry read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	engine, err := h.engine(c)
	if err != nil {
		return err
	}

	if err := engine.MarkRead(c.Param("notificationId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}

// MarkAllRead marks every notification log entry read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	engine, err := h.engine(c)
	if err != nil {
		return err
	}

	engine.MarkAllRead()

	return response.Success(c, http.StatusOK, nil, "All notifications marked read")
}

// DismissAlert acknowledges one order alert. The durable record is
// marked dismissed and the alert retracted on every device.
func (h *NotificationHandler) DismissAlert(c echo.Context) error {
	engine, err := h.engine(c)
	if err != nil {
		return err
	}

	if err := engine.Dismiss(c.Request().Context(), c.Param("orderId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Alert dismissed")
}

// engine resolves the seller's running alert engine.
func (h *NotificationHandler) engine(c echo.Context) (usecase.NotificationEngine, error) {
	sellerID, err := getSellerID(c)
	if err != nil {
		return nil, err
	}

	engine, err := h.uc.EngineFor(c.Request().Context(), sellerID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return engine, nil
}
