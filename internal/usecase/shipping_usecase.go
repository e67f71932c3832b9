package usecase

import (
	"context"
	"net/http"
	"strings"
)

type ShippingCostInput struct {
	Courier     string
	Origin      string
	Destination string
	Weight      int64
	Volume      string
}

type ShippingService struct {
	Service     string `json:"service"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Etd         string `json:"etd"`
}

type ShippingCostResult struct {
	Courier  string            `json:"courier"`
	Services []ShippingService `json:"services"`
}

type TrackingEvent struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

type TrackingResult struct {
	Awb     string          `json:"awb"`
	Courier string          `json:"courier"`
	Status  string          `json:"status"`
	History []TrackingEvent `json:"history"`
}

// ShippingGateway is the courier rate/tracking API boundary.
type ShippingGateway interface {
	Cost(ctx context.Context, in ShippingCostInput) (ShippingCostResult, error)
	Track(ctx context.Context, courier string, awb string) (TrackingResult, error)
}

type ShippingUsecase struct {
	gateway ShippingGateway
}

func NewShippingUsecase(gateway ShippingGateway) *ShippingUsecase {
	return &ShippingUsecase{gateway: gateway}
}

func (u *ShippingUsecase) Cost(ctx context.Context, in ShippingCostInput) (ShippingCostResult, error) {
	if strings.TrimSpace(in.Courier) == "" {
		return ShippingCostResult{}, NewHTTPError(http.StatusBadRequest, "courier required")
	}
	if strings.TrimSpace(in.Origin) == "" {
		return ShippingCostResult{}, NewHTTPError(http.StatusBadRequest, "origin required")
	}
	if strings.TrimSpace(in.Destination) == "" {
		return ShippingCostResult{}, NewHTTPError(http.StatusBadRequest, "destination required")
	}
	if in.Weight <= 0 {
		return ShippingCostResult{}, NewHTTPError(http.StatusBadRequest, "weight must be > 0")
	}

	out, err := u.gateway.Cost(ctx, in)
	if err != nil {
		return ShippingCostResult{}, NewHTTPError(http.StatusInternalServerError, "failed to fetch shipping rates")
	}
	return out, nil
}

func (u *ShippingUsecase) Track(ctx context.Context, courier string, awb string) (TrackingResult, error) {
	if strings.TrimSpace(courier) == "" {
		return TrackingResult{}, NewHTTPError(http.StatusBadRequest, "courier required")
	}
	if strings.TrimSpace(awb) == "" {
		return TrackingResult{}, NewHTTPError(http.StatusBadRequest, "awb required")
	}

	out, err := u.gateway.Track(ctx, courier, awb)
	if err != nil {
		return TrackingResult{}, NewHTTPError(http.StatusInternalServerError, "failed to fetch tracking status")
	}
	return out, nil
}
