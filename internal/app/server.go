package app

import (
	"context"
	"errors"
	"net/http"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"
)

// start запускает HTTP сервер и ждет сигнала остановки
func (a *App) start() int {
	server := &http.Server{
		Addr:    a.config.ServerAddress.String(),
		Handler: a.router,
	}

	go func() {
		a.logger.Info("Starting server", zap.String("address", server.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		a.config.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				a.logger.Info("Shutting down server")
				if err := server.Shutdown(ctx); err != nil {
					return err
				}
				// Фоновые счетчики кликов дописываются до закрытия хранилищ
				a.usecase.Wait()
				a.Close()
				return nil
			},
		},
	)

	code := <-wait
	a.logger.Info("Application stopped", zap.Int("exit_code", code))

	return code
}
