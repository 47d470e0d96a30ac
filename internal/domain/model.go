package domain

type StepStatus string

const (
	StepVisited StepStatus = "visited"
	StepCurrent StepStatus = "current"
	StepPending StepStatus = "pending"
)

// NotVisited is the vendor's value for a delivery location the vehicle has
// not reached yet.
const NotVisited = "notVisited"

type ShipmentStep struct {
	Name     string
	Location string
	Status   StepStatus
}

// DeliveryLocation is one stop on the route to the final destination.
// Visited is a vendor enum ("visited", "notVisited", ...), not a bool.
type DeliveryLocation struct {
	LocationCode    string
	CountryCode     string
	LocationName    string
	CountryName     string
	DestinationType string
	TransportMethod string
	Visited         string
}

// OrderStatus is the read-only snapshot of one vehicle order, built from a
// single fetch and discarded after printing.
type OrderStatus struct {
	OrderID           string
	Status            string
	ETA               string
	EstimatedDelivery string
	CallOffStatus     string
	Delayed           bool
	DamageCode        string
	VehicleModel      string
	Engine            string
	Transmission      string
	ColorCode         string
	VIN               string
	Steps             []ShipmentStep
	Deliveries        []DeliveryLocation
}
