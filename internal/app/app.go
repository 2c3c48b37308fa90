package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/shopmart/storefront/config"
	"github.com/shopmart/storefront/internal/adapter/catalogdata"
	"github.com/shopmart/storefront/internal/adapter/events"
	"github.com/shopmart/storefront/internal/adapter/httphandler"
	"github.com/shopmart/storefront/internal/core/service"
	"github.com/shopmart/storefront/pkg/schema"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    *service.Catalog
	bus        *events.Bus
	publisher  events.ClientEventsPublisher
	recorder   *events.ClientEventsRecorder
	registry   *httphandler.Registry
	checkout   service.Checkout
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initEventsPipeline()
	app.initCoreState()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	src := catalogdata.NewSource(app.cfg.CatalogFile)
	catalog, err := service.NewCatalog(app.ctx, src)
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = catalog
}

func (app *App) initEventsPipeline() {
	topic := app.cfg.Events.ClientEventsTopic
	serde := schema.NewClientEventSerdeV1()

	app.bus = events.NewBus(app.cfg.Events.Buffer)
	app.publisher = events.NewClientEventsPublisher(topic, app.bus, serde)
	app.recorder = events.NewClientEventsRecorder(topic, app.bus, serde)
}

func (app *App) initCoreState() {
	demo := service.Credentials{
		Name:     app.cfg.DemoUser.Name,
		Email:    app.cfg.DemoUser.Email,
		Password: app.cfg.DemoUser.Password,
	}
	app.registry = httphandler.NewRegistry(app.publisher, demo)
	app.checkout = service.NewCheckout(app.checkoutConfig(), app.publisher)
}

func (app *App) checkoutConfig() service.CheckoutConfig {
	return service.CheckoutConfig{
		ProcessingDelay: app.cfg.Checkout.ProcessingDelay,
		FreeShippingMin: app.cfg.Checkout.FreeShippingMin,
		ShippingFee:     app.cfg.Checkout.ShippingFee,
	}
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.catalog, app.publisher)
	httphandler.RegisterCart(mux, app.registry, app.catalog, app.checkoutConfig())
	httphandler.RegisterWishlist(mux, app.registry, app.catalog)
	httphandler.RegisterSession(mux, app.registry)
	httphandler.RegisterCheckout(mux, app.registry, app.checkout)
	httphandler.RegisterAnalytics(mux, app.recorder)

	handler := httphandler.WithSession(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

// Run starts the events recorder and the HTTP server. It blocks until the
// recorder subscription is ready, so no early client event is lost.
func (app *App) Run(stopFn context.CancelFunc) {
	var wg sync.WaitGroup
	wg.Add(1)
	go app.recorder.Run(app.ctx, &wg)
	wg.Wait()

	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.bus.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
