package subnet

import (
	"context"
	"fmt"
)

// CreateSubnetRequest carries the subnet creation parameters.
type CreateSubnetRequest struct {
	Name        string
	Description string
	TwitterURL  string
	FluxReward  float64
}

// CreateSubnetResult reports the outcome of a subnet creation.
type CreateSubnetResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Service creates subnets.
type Service struct{}

// NewService creates a subnet service.
func NewService() *Service {
	return &Service{}
}

// CreateSubnet registers a subnet. The external registration call is
// not live yet; until it lands this reports success directly.
// TODO: call the subnet registration API once its endpoint is available.
func (s *Service) CreateSubnet(ctx context.Context, req CreateSubnetRequest) CreateSubnetResult {
	return CreateSubnetResult{
		Success: true,
		Message: fmt.Sprintf("Successfully created subnet: %s", req.Name),
	}
}
