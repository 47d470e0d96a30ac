package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusFixture = `{
	"orderDetails": {
		"orderId": "0000XXXXXXXXXXX1",
		"vehicleModel": "Yaris Cross",
		"engine": "1.5 Hybrid",
		"transmission": "Automatic",
		"vehicleExternalColor": "2VP",
		"vin": "JTDBAAAA00AA00001"
	},
	"currentStatus": {
		"currentStatus": "ArrivedInCountry",
		"callOffStatus": "notCalledOff",
		"isDelayed": false,
		"estimatedDeliveryToFinalDestination": "2026-09-05"
	},
	"etaToFinalDestination": "2026-09-01",
	"preprocessed": {
		"steps": {
			"order confirmed":   {"location": "", "status": "visited"},
			"build in progress": {"location": "plant", "status": "visited"},
			"left the factory":  {"location": "plant", "status": "visited"},
			"in transit":        {"location": "at sea", "status": "visited"},
			"arrived in country": {"location": "port", "status": "current"}
		}
	},
	"intermediateDeliveries": [
		{
			"locationCode": "PRT01",
			"countryCode": "NL",
			"locationName": "Rotterdam",
			"countryName": "Netherlands",
			"destinationType": "port",
			"transportMethod": "vessel",
			"isVisited": "visited"
		},
		{
			"locationCode": "HUB02",
			"countryCode": "GB",
			"locationName": "Derby",
			"countryName": "United Kingdom",
			"destinationType": "hub",
			"transportMethod": "truck",
			"isVisited": "notVisited"
		}
	]
}`

func TestStepListPreservesObjectOrder(t *testing.T) {
	var resp OrderStatusResponse
	require.NoError(t, json.Unmarshal([]byte(statusFixture), &resp))

	names := make([]string, 0, len(resp.Preprocessed.Steps))
	for _, s := range resp.Preprocessed.Steps {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"order confirmed",
		"build in progress",
		"left the factory",
		"in transit",
		"arrived in country",
	}, names)
}

func TestStepListNull(t *testing.T) {
	var steps StepList
	require.NoError(t, json.Unmarshal([]byte(`null`), &steps))
	assert.Empty(t, steps)
}

func TestStepListRejectsNonObject(t *testing.T) {
	var steps StepList
	assert.Error(t, json.Unmarshal([]byte(`["visited"]`), &steps))
}

func TestToModel(t *testing.T) {
	var resp OrderStatusResponse
	require.NoError(t, json.Unmarshal([]byte(statusFixture), &resp))

	st := resp.ToModel()
	assert.Equal(t, "0000XXXXXXXXXXX1", st.OrderID)
	assert.Equal(t, "ArrivedInCountry", st.Status)
	assert.Equal(t, "2026-09-01", st.ETA)
	assert.Equal(t, "2026-09-05", st.EstimatedDelivery)
	assert.Equal(t, "notCalledOff", st.CallOffStatus)
	assert.False(t, st.Delayed)
	assert.Empty(t, st.DamageCode)
	assert.Equal(t, "Yaris Cross", st.VehicleModel)
	assert.Equal(t, "JTDBAAAA00AA00001", st.VIN)

	require.Len(t, st.Steps, 5)
	assert.Equal(t, StepCurrent, st.Steps[4].Status)
	for _, step := range st.Steps[:4] {
		assert.Equal(t, StepVisited, step.Status)
	}

	require.Len(t, st.Deliveries, 2)
	assert.Equal(t, "PRT01", st.Deliveries[0].LocationCode)
	assert.Equal(t, "vessel", st.Deliveries[0].TransportMethod)
	assert.Equal(t, NotVisited, st.Deliveries[1].Visited)
}

func TestToModelMissingOptionalFields(t *testing.T) {
	var resp OrderStatusResponse
	require.NoError(t, json.Unmarshal([]byte(`{"orderDetails":{"orderId":"A1"}}`), &resp))

	st := resp.ToModel()
	assert.Equal(t, "A1", st.OrderID)
	assert.Empty(t, st.Status)
	assert.Empty(t, st.Steps)
	assert.Empty(t, st.Deliveries)
}
