package tracker

import (
	"context"
	"fmt"
	"io"
	"os"

	"toyota-tracker/internal/common/logger"
	"toyota-tracker/internal/config"
	"toyota-tracker/internal/datestore"
	"toyota-tracker/internal/domain"
	"toyota-tracker/internal/report"
	"toyota-tracker/internal/toyota"
)

// OrderAPI is the slice of the vendor client the tracker needs.
type OrderAPI interface {
	Login(ctx context.Context, username, password string) error
	Orders(ctx context.Context) ([]string, error)
	OrderStatus(ctx context.Context, orderID string) (domain.OrderStatus, error)
}

type Tracker struct {
	api   OrderAPI
	store *datestore.Store // nil when date recording is off
	out   io.Writer
	lg    *logger.Logger
}

func New(api OrderAPI, store *datestore.Store, out io.Writer, lg *logger.Logger) *Tracker {
	return &Tracker{api: api, store: store, out: out, lg: lg}
}

// Run performs one full cycle: login, list orders, report each one. The
// first failure aborts the run; nothing is retried.
func (t *Tracker) Run(ctx context.Context, cfg config.Config) error {
	if err := t.api.Login(ctx, cfg.Username, cfg.Password); err != nil {
		return err
	}
	t.lg.Debug("login_ok", map[string]any{"username": cfg.Username})

	ids, err := t.api.Orders(ctx)
	if err != nil {
		return err
	}
	if cfg.OrderID != "" {
		ids = keep(ids, cfg.OrderID)
		if len(ids) == 0 {
			return fmt.Errorf("order %s not found on this account", cfg.OrderID)
		}
	}
	if len(ids) == 0 {
		t.lg.Warn("no_orders", nil)
		fmt.Fprintf(t.out, "no orders found.\n")
		return nil
	}

	for _, id := range ids {
		status, err := t.api.OrderStatus(ctx, id)
		if err != nil {
			return err
		}
		var dates *datestore.Dates
		if t.store != nil {
			if dates, err = t.store.Record(status); err != nil {
				return fmt.Errorf("record dates for %s: %w", id, err)
			}
		}
		if err := report.Render(t.out, status, dates); err != nil {
			return err
		}
		t.lg.Debug("order_reported", map[string]any{"order_id": id, "status": status.Status})
	}
	return nil
}

func keep(ids []string, want string) []string {
	var out []string
	for _, id := range ids {
		if id == want {
			out = append(out, id)
		}
	}
	return out
}

// Run wires the production dependencies and executes one cycle.
func Run(ctx context.Context, cfg config.Config) error {
	lg := logger.New("tracker")
	if cfg.Verbose {
		lg = lg.WithLevel(logger.LevelDebug)
	}
	client := toyota.NewClient(toyota.Config{Timeout: cfg.Timeout})
	var store *datestore.Store
	if cfg.StoreDates {
		store = datestore.New(cfg.DatesDir)
	}
	return New(client, store, os.Stdout, lg).Run(ctx, cfg)
}
