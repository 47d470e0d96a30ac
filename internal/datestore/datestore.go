package datestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"toyota-tracker/internal/domain"
)

const dateLayout = "2006-01-02"

// Dates holds the first day each state was observed, keyed by step name or
// delivery location code, then by state.
type Dates struct {
	Steps      map[string]map[string]string `json:"steps"`
	Deliveries map[string]map[string]string `json:"deliveries"`
}

func newDates() *Dates {
	return &Dates{
		Steps:      map[string]map[string]string{},
		Deliveries: map[string]map[string]string{},
	}
}

// StepDates formats the recorded dates of one step, oldest first.
func (d *Dates) StepDates(name string) string { return formatDates(d.Steps[name]) }

// DeliveryDates formats the recorded dates of one delivery location, oldest first.
func (d *Dates) DeliveryDates(code string) string { return formatDates(d.Deliveries[code]) }

func formatDates(states map[string]string) string {
	if len(states) == 0 {
		return ""
	}
	type kv struct{ state, date string }
	pairs := make([]kv, 0, len(states))
	for state, date := range states {
		pairs = append(pairs, kv{state, date})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].date != pairs[j].date {
			return pairs[i].date < pairs[j].date
		}
		return pairs[i].state < pairs[j].state
	})
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.state + ": " + p.date
	}
	return strings.Join(parts, " | ")
}

// Store persists one <orderID>.json date file per order under dir.
type Store struct {
	dir string
	now func() time.Time
}

func New(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

func (s *Store) path(orderID string) string {
	return filepath.Join(s.dir, orderID+".json")
}

// Load returns the recorded dates for the order, or an empty set when no
// file exists yet.
func (s *Store) Load(orderID string) (*Dates, error) {
	raw, err := os.ReadFile(s.path(orderID))
	if errors.Is(err, fs.ErrNotExist) {
		return newDates(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dates file: %w", err)
	}
	d := newDates()
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("decode dates file: %w", err)
	}
	if d.Steps == nil {
		d.Steps = map[string]map[string]string{}
	}
	if d.Deliveries == nil {
		d.Deliveries = map[string]map[string]string{}
	}
	return d, nil
}

// Record stamps today's date on every newly observed state and writes the
// file back. Already-recorded dates are never overwritten; pending steps and
// unvisited locations are not recorded.
func (s *Store) Record(order domain.OrderStatus) (*Dates, error) {
	d, err := s.Load(order.OrderID)
	if err != nil {
		return nil, err
	}
	today := s.now().Format(dateLayout)

	for _, step := range order.Steps {
		if step.Status == domain.StepPending {
			continue
		}
		states := d.Steps[step.Name]
		if states == nil {
			states = map[string]string{}
			d.Steps[step.Name] = states
		}
		if _, ok := states[string(step.Status)]; !ok {
			states[string(step.Status)] = today
		}
	}
	for _, del := range order.Deliveries {
		if del.Visited == domain.NotVisited || del.Visited == "" {
			continue
		}
		states := d.Deliveries[del.LocationCode]
		if states == nil {
			states = map[string]string{}
			d.Deliveries[del.LocationCode] = states
		}
		if _, ok := states[del.Visited]; !ok {
			states[del.Visited] = today
		}
	}

	if err := s.save(order.OrderID, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) save(orderID string, d *Dates) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(orderID), raw, 0o644); err != nil {
		return fmt.Errorf("write dates file: %w", err)
	}
	return nil
}
