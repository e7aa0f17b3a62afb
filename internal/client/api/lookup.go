package api

import (
	"context"
	"fmt"

	"github.com/csyeteam03/trace-console/internal/client/models"
	"github.com/csyeteam03/trace-console/internal/common"
)

// LookupAPI groups the read-only department and semester lookups.
type LookupAPI interface {
	Departments(ctx context.Context) ([]models.Department, error)
	DepartmentByID(ctx context.Context, id int) (*models.Department, error)
	Semesters(ctx context.Context) ([]models.SemesterTerm, error)
}

type LookupClient struct {
	gw *Gateway
}

func NewLookupClient(gw *Gateway) *LookupClient {
	return &LookupClient{gw: gw}
}

func (c *LookupClient) Departments(ctx context.Context) ([]models.Department, error) {
	var out []models.Department
	if err := c.gw.GetJSON(ctx, "/v1/departments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DepartmentByID resolves a department by scanning the full list: the server
// has no per-id endpoint. Tolerable because department counts stay small; the
// not-found contract must hold even if a real indexed lookup appears upstream.
func (c *LookupClient) DepartmentByID(ctx context.Context, id int) (*models.Department, error) {
	departments, err := c.Departments(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range departments {
		if d.DepartmentID == id {
			dep := d
			return &dep, nil
		}
	}
	return nil, fmt.Errorf("Department with ID %d %w", id, common.ErrNotFound)
}

func (c *LookupClient) Semesters(ctx context.Context) ([]models.SemesterTerm, error) {
	var out []models.SemesterTerm
	if err := c.gw.GetJSON(ctx, "/v1/semesters", &out); err != nil {
		return nil, err
	}
	return out, nil
}
