package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/csyeteam03/trace-console/internal/client/models"
)

// TraceAPI groups the trace-survey operations. Traces are path-scoped under
// their course except for the global listing.
type TraceAPI interface {
	Create(ctx context.Context, courseID string, req models.TraceRequest) (*models.Trace, error)
	ListAll(ctx context.Context) ([]models.Trace, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.Trace, error)
	Get(ctx context.Context, courseID, traceID string) (*models.Trace, error)
	Delete(ctx context.Context, courseID, traceID string) error
	FetchPDF(ctx context.Context, courseID, traceID string) ([]byte, string, error)
}

type TraceClient struct {
	gw *Gateway
}

func NewTraceClient(gw *Gateway) *TraceClient {
	return &TraceClient{gw: gw}
}

func tracePath(courseID string, rest ...string) string {
	p := "/v1/course/" + url.PathEscape(courseID) + "/trace"
	for _, r := range rest {
		p += "/" + url.PathEscape(r)
	}
	return p
}

// pdfMagic is the header every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// IsPDF reports whether the named file content looks like a PDF. The name's
// extension is consulted only when no content is available; content wins over
// name.
func IsPDF(name string, data []byte) bool {
	if len(data) > 0 {
		return bytes.HasPrefix(data, pdfMagic)
	}
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Create uploads a new trace survey: structured fields plus the PDF go out as
// one multipart body. Non-PDF content is rejected before any network call.
func (c *TraceClient) Create(ctx context.Context, courseID string, req models.TraceRequest) (*models.Trace, error) {
	if !IsPDF(req.FileName, req.File) {
		return nil, ErrNotPDF
	}

	var out models.Trace
	err := c.gw.PostMultipart(ctx, tracePath(courseID), func(w *multipart.Writer) error {
		if err := w.WriteField("instructor_id", req.InstructorID); err != nil {
			return err
		}
		if err := w.WriteField("semester_term", req.SemesterTerm); err != nil {
			return err
		}
		if err := w.WriteField("section", req.Section); err != nil {
			return err
		}
		fw, err := w.CreateFormFile("file", req.FileName)
		if err != nil {
			return err
		}
		_, err = fw.Write(req.File)
		return err
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *TraceClient) ListAll(ctx context.Context) ([]models.Trace, error) {
	var out []models.Trace
	if err := c.gw.GetJSON(ctx, "/v1/traces", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TraceClient) ListByCourse(ctx context.Context, courseID string) ([]models.Trace, error) {
	var out []models.Trace
	if err := c.gw.GetJSON(ctx, tracePath(courseID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TraceClient) Get(ctx context.Context, courseID, traceID string) (*models.Trace, error) {
	var out models.Trace
	if err := c.gw.GetJSON(ctx, tracePath(courseID, traceID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *TraceClient) Delete(ctx context.Context, courseID, traceID string) error {
	return c.gw.Delete(ctx, tracePath(courseID, traceID))
}

// FetchPDF retrieves the survey file as an opaque blob over the authenticated
// channel, returning the bytes and the media type.
func (c *TraceClient) FetchPDF(ctx context.Context, courseID, traceID string) ([]byte, string, error) {
	data, mediaType, err := c.gw.GetBlob(ctx, tracePath(courseID, traceID)+"/pdf")
	if err != nil {
		switch {
		case HasStatus(err, 404):
			return nil, "", ErrPDFNotFound
		case HasStatus(err, 401), HasStatus(err, 403):
			return nil, "", ErrPDFUnauthorized
		default:
			return nil, "", messageOr(err, "Failed to load PDF. Please try again later.")
		}
	}
	if mediaType == "" {
		mediaType = "application/pdf"
	}
	return data, mediaType, nil
}
