package api

import (
	"context"
	"net/url"

	"github.com/csyeteam03/trace-console/internal/client/models"
)

// InstructorAPI groups the instructor CRUD operations.
type InstructorAPI interface {
	Create(ctx context.Context, req models.InstructorRequest) (*models.Instructor, error)
	List(ctx context.Context) ([]models.Instructor, error)
	Get(ctx context.Context, id string) (*models.Instructor, error)
	Update(ctx context.Context, id string, req models.InstructorRequest) error
	Patch(ctx context.Context, id string, patch models.InstructorPatch) error
	Delete(ctx context.Context, id string) error
}

type InstructorClient struct {
	gw *Gateway
}

func NewInstructorClient(gw *Gateway) *InstructorClient {
	return &InstructorClient{gw: gw}
}

func (c *InstructorClient) Create(ctx context.Context, req models.InstructorRequest) (*models.Instructor, error) {
	var out models.Instructor
	if err := c.gw.PostJSON(ctx, "/v1/instructor", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *InstructorClient) List(ctx context.Context) ([]models.Instructor, error) {
	var out []models.Instructor
	if err := c.gw.GetJSON(ctx, "/v1/instructors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *InstructorClient) Get(ctx context.Context, id string) (*models.Instructor, error) {
	var out models.Instructor
	if err := c.gw.GetJSON(ctx, "/v1/instructor/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *InstructorClient) Update(ctx context.Context, id string, req models.InstructorRequest) error {
	return c.gw.PutJSON(ctx, "/v1/instructor/"+url.PathEscape(id), req)
}

func (c *InstructorClient) Patch(ctx context.Context, id string, patch models.InstructorPatch) error {
	return c.gw.PatchJSON(ctx, "/v1/instructor/"+url.PathEscape(id), patch)
}

// Delete removes an instructor. The server answers 503 when courses still
// reference the instructor; that case gets its own guidance message.
func (c *InstructorClient) Delete(ctx context.Context, id string) error {
	if err := c.gw.Delete(ctx, "/v1/instructor/"+url.PathEscape(id)); err != nil {
		if HasStatus(err, 503) {
			return ErrInstructorHasCourses
		}
		return err
	}
	return nil
}
