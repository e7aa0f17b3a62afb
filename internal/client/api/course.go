package api

import (
	"context"
	"net/url"

	"github.com/csyeteam03/trace-console/internal/client/models"
)

// CourseAPI groups the course CRUD operations.
type CourseAPI interface {
	Create(ctx context.Context, req models.CourseRequest) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id string) (*models.Course, error)
	Update(ctx context.Context, id string, req models.CourseRequest) error
	Patch(ctx context.Context, id string, patch models.CoursePatch) error
	Delete(ctx context.Context, id string) error
}

type CourseClient struct {
	gw *Gateway
}

func NewCourseClient(gw *Gateway) *CourseClient {
	return &CourseClient{gw: gw}
}

func (c *CourseClient) Create(ctx context.Context, req models.CourseRequest) (*models.Course, error) {
	var out models.Course
	if err := c.gw.PostJSON(ctx, "/v1/course", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CourseClient) List(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := c.gw.GetJSON(ctx, "/v1/courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CourseClient) Get(ctx context.Context, id string) (*models.Course, error) {
	var out models.Course
	if err := c.gw.GetJSON(ctx, "/v1/course/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CourseClient) Update(ctx context.Context, id string, req models.CourseRequest) error {
	return c.gw.PutJSON(ctx, "/v1/course/"+url.PathEscape(id), req)
}

func (c *CourseClient) Patch(ctx context.Context, id string, patch models.CoursePatch) error {
	return c.gw.PatchJSON(ctx, "/v1/course/"+url.PathEscape(id), patch)
}

func (c *CourseClient) Delete(ctx context.Context, id string) error {
	return c.gw.Delete(ctx, "/v1/course/"+url.PathEscape(id))
}
