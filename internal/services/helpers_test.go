package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"coffeeshop/internal/domain"
	applog "coffeeshop/internal/log"
	"coffeeshop/internal/repos"
)

func memStore(t *testing.T) repos.KVStore {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewSQLStore(db)
}

// brokenStore fails every call.
type brokenStore struct{}

var errDisk = errors.New("disk unavailable")

func (brokenStore) Get(context.Context, string) (string, bool, error) { return "", false, errDisk }
func (brokenStore) Set(context.Context, string, string) error         { return errDisk }
func (brokenStore) Remove(context.Context, string) error              { return errDisk }

func captureLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	applog.SetLogger(zap.New(core))
	t.Cleanup(func() { applog.SetLogger(nil) })
	return logs
}

func product(id, price string) domain.Product {
	return domain.Product{ID: id, Name: "Coffee " + id, Price: decimal.RequireFromString(price), Category: "Espresso"}
}

func defaultFee() domain.DeliveryFee {
	return domain.DeliveryFee{Original: decimal.RequireFromString("2.00"), Discounted: decimal.RequireFromString("1.00")}
}
