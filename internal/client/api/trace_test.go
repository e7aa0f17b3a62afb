package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csyeteam03/trace-console/internal/client/models"
)

func TestTraceCreate_RejectsNonPDFBeforeNetwork(t *testing.T) {
	called := false
	c := NewTraceClient(newTestGateway(t, "t", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	_, err := c.Create(context.Background(), "c1", models.TraceRequest{
		InstructorID: "i1",
		SemesterTerm: "FA25",
		Section:      "01",
		FileName:     "notes.txt",
		File:         []byte("just text"),
	})
	require.ErrorIs(t, err, ErrNotPDF)
	require.EqualError(t, err, "Only PDF files are allowed.")
	require.False(t, called, "no network call may happen for a rejected file")
}

func TestTraceCreate_SendsMultipartForm(t *testing.T) {
	pdf := []byte("%PDF-1.7\nfake body")

	c := NewTraceClient(newTestGateway(t, "t", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/course/c1/trace", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		require.Equal(t, "i1", r.FormValue("instructor_id"))
		require.Equal(t, "FA25", r.FormValue("semester_term"))
		require.Equal(t, "01", r.FormValue("section"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "survey.pdf", hdr.Filename)
		body, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, pdf, body)

		_ = json.NewEncoder(w).Encode(models.Trace{TraceID: "t1", CourseID: "c1", FileName: "survey.pdf"})
	})))

	trace, err := c.Create(context.Background(), "c1", models.TraceRequest{
		InstructorID: "i1",
		SemesterTerm: "FA25",
		Section:      "01",
		FileName:     "survey.pdf",
		File:         pdf,
	})
	require.NoError(t, err)
	require.Equal(t, "t1", trace.TraceID)
}

func TestTraceListAndGetAndDeletePaths(t *testing.T) {
	type call struct{ method, path string }
	var calls []call

	c := NewTraceClient(newTestGateway(t, "t", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		switch r.URL.Path {
		case "/v1/traces", "/v1/course/c1/trace":
			_ = json.NewEncoder(w).Encode([]models.Trace{{TraceID: "t1"}})
		default:
			_ = json.NewEncoder(w).Encode(models.Trace{TraceID: "t1"})
		}
	})))

	ctx := context.Background()

	all, err := c.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	byCourse, err := c.ListByCourse(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, byCourse, 1)

	got, err := c.Get(ctx, "c1", "t1")
	require.NoError(t, err)
	require.Equal(t, "t1", got.TraceID)

	require.NoError(t, c.Delete(ctx, "c1", "t1"))

	want := []call{
		{http.MethodGet, "/v1/traces"},
		{http.MethodGet, "/v1/course/c1/trace"},
		{http.MethodGet, "/v1/course/c1/trace/t1"},
		{http.MethodDelete, "/v1/course/c1/trace/t1"},
	}
	require.Equal(t, want, calls)
}

func TestFetchPDF_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"missing file", http.StatusNotFound, ErrPDFNotFound},
		{"expired session", http.StatusUnauthorized, ErrPDFUnauthorized},
		{"forbidden", http.StatusForbidden, ErrPDFUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewTraceClient(newTestGateway(t, "t", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})))
			_, _, err := c.FetchPDF(context.Background(), "c1", "t1")
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFetchPDF_GenericErrorFallback(t *testing.T) {
	c := NewTraceClient(newTestGateway(t, "t", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})))

	_, _, err := c.FetchPDF(context.Background(), "c1", "t1")
	require.EqualError(t, err, "Failed to load PDF. Please try again later.")
}

func TestFetchPDF_DefaultsMediaType(t *testing.T) {
	c := NewTraceClient(newTestGateway(t, "t", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress sniffing
		_, _ = w.Write([]byte("%PDF-1.7"))
	})))

	data, mediaType, err := c.FetchPDF(context.Background(), "c1", "t1")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "application/pdf", mediaType)
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		data     []byte
		want     bool
	}{
		{"pdf content", "anything.bin", []byte("%PDF-1.4..."), true},
		{"text content with pdf name", "fake.pdf", []byte("hello"), false},
		{"no content, pdf extension", "survey.PDF", nil, true},
		{"no content, other extension", "survey.docx", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsPDF(tc.fileName, tc.data))
		})
	}
}
