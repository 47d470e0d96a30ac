package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AuthResponse is the login endpoint payload.
type AuthResponse struct {
	Token           string `json:"token"`
	CustomerProfile struct {
		UUID string `json:"uuid"`
	} `json:"customerProfile"`
}

// LeadOrder is one entry of the ordered-leads listing. The listing carries
// more fields; only the ID is needed to drive the status lookup.
type LeadOrder struct {
	ID string `json:"id"`
}

// OrderStatusResponse mirrors the order tracker payload.
type OrderStatusResponse struct {
	OrderDetails struct {
		OrderID              string `json:"orderId"`
		VehicleModel         string `json:"vehicleModel"`
		Engine               string `json:"engine"`
		Transmission         string `json:"transmission"`
		VehicleExternalColor string `json:"vehicleExternalColor"`
		VIN                  string `json:"vin"`
	} `json:"orderDetails"`
	CurrentStatus struct {
		CurrentStatus     string `json:"currentStatus"`
		CallOffStatus     string `json:"callOffStatus"`
		IsDelayed         bool   `json:"isDelayed"`
		DamageCode        string `json:"damageCode"`
		EstimatedDelivery string `json:"estimatedDeliveryToFinalDestination"`
	} `json:"currentStatus"`
	ETAToFinalDestination string `json:"etaToFinalDestination"`
	Preprocessed          struct {
		Steps StepList `json:"steps"`
	} `json:"preprocessed"`
	IntermediateDeliveries []DeliveryDTO `json:"intermediateDeliveries"`
}

type StepDTO struct {
	Name     string
	Location string
	Status   string
}

// StepList decodes the vendor's steps object. The object's key order is the
// shipment order, so a plain map would lose information; the token stream
// keeps the keys in document order.
type StepList []StepDTO

func (s *StepList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("steps: expected object, got %v", tok)
	}
	var out StepList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)
		var body struct {
			Location string `json:"location"`
			Status   string `json:"status"`
		}
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("steps[%s]: %w", name, err)
		}
		out = append(out, StepDTO{Name: name, Location: body.Location, Status: body.Status})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

type DeliveryDTO struct {
	LocationCode    string `json:"locationCode"`
	CountryCode     string `json:"countryCode"`
	LocationName    string `json:"locationName"`
	CountryName     string `json:"countryName"`
	DestinationType string `json:"destinationType"`
	TransportMethod string `json:"transportMethod"`
	IsVisited       string `json:"isVisited"`
}

// ToModel maps the wire payload onto the snapshot the presenter consumes.
func (r *OrderStatusResponse) ToModel() OrderStatus {
	st := OrderStatus{
		OrderID:           r.OrderDetails.OrderID,
		Status:            r.CurrentStatus.CurrentStatus,
		ETA:               r.ETAToFinalDestination,
		EstimatedDelivery: r.CurrentStatus.EstimatedDelivery,
		CallOffStatus:     r.CurrentStatus.CallOffStatus,
		Delayed:           r.CurrentStatus.IsDelayed,
		DamageCode:        r.CurrentStatus.DamageCode,
		VehicleModel:      r.OrderDetails.VehicleModel,
		Engine:            r.OrderDetails.Engine,
		Transmission:      r.OrderDetails.Transmission,
		ColorCode:         r.OrderDetails.VehicleExternalColor,
		VIN:               r.OrderDetails.VIN,
	}
	for _, step := range r.Preprocessed.Steps {
		st.Steps = append(st.Steps, ShipmentStep{
			Name:     step.Name,
			Location: step.Location,
			Status:   StepStatus(step.Status),
		})
	}
	for _, d := range r.IntermediateDeliveries {
		st.Deliveries = append(st.Deliveries, DeliveryLocation{
			LocationCode:    d.LocationCode,
			CountryCode:     d.CountryCode,
			LocationName:    d.LocationName,
			CountryName:     d.CountryName,
			DestinationType: d.DestinationType,
			TransportMethod: d.TransportMethod,
			Visited:         d.IsVisited,
		})
	}
	return st
}
