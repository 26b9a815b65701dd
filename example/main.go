// Package main demonstrates usage of the scg-trace package.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/next-trace/scg-trace/traced"
)

// AppError is the broad error category handlers deal with.
type AppError struct {
	HTTPStatus int
	Code       string
	Key        string
	Cause      error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s [%s] (%d): %v", e.Code, e.Key, e.HTTPStatus, e.Cause)
}

func (e *AppError) Unwrap() error { return e.Cause }

var errNoRows = errors.New("row not found")

// RowMissing is the narrow error the repository layer speaks.
type RowMissing struct{ ID string }

func (r RowMissing) Error() string { return "customer " + r.ID + ": " + errNoRows.Error() }

func (r RowMissing) Unwrap() error { return errNoRows }

func widen(r RowMissing) *AppError {
	return &AppError{HTTPStatus: http.StatusNotFound, Code: "customer.not_found", Key: "not_found", Cause: r}
}

type customer struct{ ID, Name string }

func findRow(id string) traced.Result[customer, RowMissing] {
	if id != "42" {
		return traced.Fail[customer](RowMissing{ID: id})
	}

	return traced.Ok[customer, RowMissing](customer{ID: id, Name: "Ada"})
}

func getCustomer(id string) traced.Result[customer, *AppError] {
	c, fwd, ok := traced.PropagateAs[customer](findRow(id), widen)
	if !ok {
		return fwd
	}

	return traced.Ok[customer, *AppError](c)
}

func greeting(id string) traced.Result[string, *AppError] {
	c, err := getCustomer(id).Try()
	if err != nil {
		return traced.Err[string](err)
	}

	return traced.Ok[string, *AppError]("hello, " + c.Name)
}

// sites adapts a trace for structured logging.
type sites []traced.Location

func (s sites) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, l := range s {
		enc.AppendString(l.String())
	}

	return nil
}

func handle(logger *zap.Logger, id string) {
	msg, err := greeting(id).Stop()
	if err != nil {
		logger.Error("request failed",
			zap.String("customer_id", id),
			zap.Int("status", err.Inner().HTTPStatus),
			zap.Error(err.Inner()),
			zap.Array("trace", sites(err.Trace())),
		)
		fmt.Printf("%+v\n", err)

		return
	}

	logger.Info("request served", zap.String("customer_id", id), zap.String("greeting", msg))
}

func main() {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	handle(logger, "42")
	handle(logger, "7")
}
