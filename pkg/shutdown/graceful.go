// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания и обработки сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"goshop/pkg/logger"
)

// Сообщения logger.
const (
	LogSignalReceived = "shutdown signal received"
	LogHooksFinished  = "shutdown hooks finished"
	LogHookFailed     = "shutdown hook failed"
	LogTimeoutExpired = "shutdown timeout expired before hooks finished"
	LogServeFailed    = "server stopped before shutdown signal"
)

// Ошибки завершения.
var (
	ErrTimeout     = errors.New("shutdown timeout expired")
	ErrServeFailed = errors.New("server stopped unexpectedly")
)

// Hook - функция освобождения ресурса.
type Hook func(context.Context) error

// Wait блокирует выполнение до получения сигнала SIGINT или SIGTERM
// либо отмены ctx, затем выполняет все хуки в рамках заданного timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Log(ctx).Info(ctx, LogSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Log(ctx).Info(ctx, LogSignalReceived, zap.Error(ctx.Err()))
	}

	return Run(context.WithoutCancel(ctx), timeout, hooks...)
}

// Serve запускает serve в отдельной горутине и ждет сигнала, отмены ctx или ошибки serve.
// Хуки выполняются в любом случае. Ошибка serve возвращается обернутой в ErrServeFailed
// вместе с ошибками хуков.
func Serve(ctx context.Context, serve func() error, timeout time.Duration, hooks ...Hook) error {
	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		if err := serve(); err != nil {
			logger.Log(ctx).Error(ctx, LogServeFailed, zap.Error(err))
			serveErr <- err
			cancel()
		}
	}()

	hooksErr := Wait(waitCtx, timeout, hooks...)

	select {
	case err := <-serveErr:
		return errors.Join(fmt.Errorf("%w: %w", ErrServeFailed, err), hooksErr)
	default:
		return hooksErr
	}
}

// Run выполняет хуки параллельно и ждет их завершения не дольше timeout.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	log := logger.Log(ctx)

	hookCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		wgp  sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i, hook := range hooks {
		wgp.Add(1)
		go func(idx int, fn Hook) {
			defer wgp.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(hookCtx, LogHookFailed, zap.Int("hook", idx), zap.Error(err))
				mu.Lock()
				errs = append(errs, fmt.Errorf("hook %d: %w", idx, err))
				mu.Unlock()
			}
		}(i, hook)
	}

	done := make(chan struct{})
	go func() {
		wgp.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(ctx, LogHooksFinished)
	case <-hookCtx.Done():
		log.Warn(ctx, LogTimeoutExpired, zap.Duration("timeout", timeout))
		return ErrTimeout
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}
