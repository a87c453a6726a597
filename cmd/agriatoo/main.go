package main

import (
	"context"
	"log/slog"
	"os"

	"agriatoo/config"
	"agriatoo/internal/delivery"
	"agriatoo/internal/delivery/http"
	"agriatoo/internal/delivery/http/middleware"
	"agriatoo/internal/delivery/http/router/handler"
	"agriatoo/internal/domain/service"
	"agriatoo/internal/infra/auth"
	"agriatoo/internal/infra/auth/firebase"
	logs "agriatoo/internal/infra/log"
	"agriatoo/internal/infra/persistence/firestore"
	"agriatoo/internal/infra/pubsub"
	"agriatoo/internal/infra/qrcode"
	"agriatoo/internal/infra/storage"
	"agriatoo/internal/usecase"
	"agriatoo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries    []delivery.Delivery `group:"deliveries"`
	Notifications usecase.NotificationUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firebase.NewAuthClient,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewOrderRepository,
			firestore.NewPendingNotificationRepository,
			firestore.NewProductRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			firebase.NewIdentityProvider,
			storage.NewImageStorage,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewNotificationRegistry,
			impl.NewOrderService,
			impl.NewProductService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUploadHandler,
			handler.NewOrderHandler,
			handler.NewProductHandler,
			handler.NewNotificationHandler,
			handler.NewAlertStreamHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Notifications.Shutdown()

			return nil
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
