package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"toyota-tracker/internal/datestore"
	"toyota-tracker/internal/domain"
)

const (
	indent      = "  "
	placeholder = "unknown"
)

var (
	labelStyle  = color.New(color.Bold)
	bannerStyle = color.New(color.Bold, color.ReverseVideo)
)

// Render writes the full report for one order. dates may be nil; when set,
// both tables get a trailing Dates column. The report is built in memory
// first so a failure never leaves partial output behind.
func Render(w io.Writer, order domain.OrderStatus, dates *datestore.Dates) error {
	if order.OrderID == "" {
		return &domain.DisplayError{Reason: "order has no id"}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "\n%s%s\n\n", indent, bannerStyle.Sprintf(" Order %s ", order.OrderID))
	writeField(&b, "Status", orUnknown(order.Status))
	writeField(&b, "Estimated Delivery", orUnknown(order.ETA)+" / "+orUnknown(order.EstimatedDelivery))
	b.WriteByte('\n')
	writeField(&b, "Call Off", orUnknown(order.CallOffStatus))
	writeField(&b, "Delayed", fmt.Sprintf("%t", order.Delayed))
	writeField(&b, "Damage", orNone(order.DamageCode))
	b.WriteByte('\n')
	writeField(&b, "Vehicle", orUnknown(order.VehicleModel))
	writeField(&b, "Engine", orUnknown(order.Engine))
	writeField(&b, "Transmission", orUnknown(order.Transmission))
	writeField(&b, "Color Code", orUnknown(order.ColorCode))
	b.WriteByte('\n')
	writeField(&b, "VIN", orUnknown(order.VIN))

	if len(order.Steps) > 0 {
		b.WriteByte('\n')
		writeTable(&b, stepsTable(order.Steps, dates))
	} else {
		fmt.Fprintf(&b, "\n%sorder has no steps.\n", indent)
	}

	if len(order.Deliveries) > 0 {
		b.WriteByte('\n')
		writeTable(&b, deliveriesTable(order.Deliveries, dates))
	} else {
		fmt.Fprintf(&b, "\n%sorder has no deliveries.\n", indent)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func stepsTable(steps []domain.ShipmentStep, dates *datestore.Dates) string {
	t := newTable()
	header := table.Row{"Step", "Location", "Status"}
	if dates != nil {
		header = append(header, "Dates")
	}
	t.AppendHeader(header)
	for _, step := range steps {
		row := table.Row{step.Name, step.Location, string(step.Status)}
		if dates != nil {
			row = append(row, dates.StepDates(step.Name))
		}
		t.AppendRow(row)
	}
	return t.Render()
}

func deliveriesTable(deliveries []domain.DeliveryLocation, dates *datestore.Dates) string {
	t := newTable()
	header := table.Row{"Loc. Code", "Location", "Loc. Type", "Transport", "Visited"}
	if dates != nil {
		header = append(header, "Dates")
	}
	t.AppendHeader(header)
	for _, d := range deliveries {
		row := table.Row{
			d.LocationCode + ", " + d.CountryCode,
			d.LocationName + ", " + d.CountryName,
			d.DestinationType,
			d.TransportMethod,
			d.Visited,
		}
		if dates != nil {
			row = append(row, dates.DeliveryDates(d.LocationCode))
		}
		t.AppendRow(row)
	}
	return t.Render()
}

func newTable() table.Writer {
	t := table.NewWriter()
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)
	return t
}

func writeTable(b *strings.Builder, rendered string) {
	for _, line := range strings.Split(rendered, "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s%s: %s\n", indent, labelStyle.Sprint(label), value)
}

func orUnknown(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// An empty damage code means no damage was reported, which is not the same
// as the field being unknown.
func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
