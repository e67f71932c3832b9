package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestShippingCost_ValidatesInput(t *testing.T) {
	uc := NewShippingUsecase(new(ShippingGatewayMock))

	_, err := uc.Cost(context.Background(), ShippingCostInput{
		Origin: "a", Destination: "b", Weight: 100,
	})
	assertErrContains(t, err, "courier required")

	_, err = uc.Cost(context.Background(), ShippingCostInput{
		Courier: "jne", Origin: "a", Destination: "b",
	})
	assertErrContains(t, err, "weight must be > 0")
}

func TestShippingCost_GatewayFailureMaskedAsGenericError(t *testing.T) {
	gateway := new(ShippingGatewayMock)
	uc := NewShippingUsecase(gateway)

	gateway.On("Cost", mock.Anything, mock.Anything).
		Return(ShippingCostResult{}, errors.New("api_key rejected"))

	_, err := uc.Cost(context.Background(), ShippingCostInput{
		Courier: "jne", Origin: "a", Destination: "b", Weight: 100,
	})
	assertHTTPStatus(t, err, http.StatusInternalServerError)
	// The upstream detail must not leak to the client.
	assertErrContains(t, err, "failed to fetch shipping rates")
}

func TestShippingCost_PassesThroughServices(t *testing.T) {
	gateway := new(ShippingGatewayMock)
	uc := NewShippingUsecase(gateway)

	gateway.On("Cost", mock.Anything, mock.Anything).Return(ShippingCostResult{
		Courier:  "jne",
		Services: []ShippingService{{Service: "REG", Price: 18000, Etd: "2-3 hari"}},
	}, nil)

	out, err := uc.Cost(context.Background(), ShippingCostInput{
		Courier: "jne", Origin: "a", Destination: "b", Weight: 100,
	})
	assert.NoError(t, err)
	assert.Len(t, out.Services, 1)
	assert.Equal(t, int64(18000), out.Services[0].Price)
}

func TestShippingTrack_RequiresCourierAndAwb(t *testing.T) {
	uc := NewShippingUsecase(new(ShippingGatewayMock))

	_, err := uc.Track(context.Background(), "", "JNE123")
	assertErrContains(t, err, "courier required")

	_, err = uc.Track(context.Background(), "jne", " ")
	assertErrContains(t, err, "awb required")
}
