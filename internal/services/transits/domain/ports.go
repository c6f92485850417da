package domain

import "context"

// ServicePort is the transits surface mounted over http
type ServicePort interface {
	Compute(ctx context.Context, req TransitRequest) (TransitResponse, error)
}
