package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csyeteam03/trace-console/internal/client/models"
	"github.com/csyeteam03/trace-console/internal/common"
)

func newLookupClient(t *testing.T, listCalls *int) *LookupClient {
	t.Helper()
	return NewLookupClient(newTestGateway(t, "t", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/departments":
			if listCalls != nil {
				*listCalls++
			}
			_ = json.NewEncoder(w).Encode([]models.Department{
				{DepartmentID: 1, Name: "Computer Science"},
				{DepartmentID: 2, Name: "Mathematics"},
			})
		case "/v1/semesters":
			_ = json.NewEncoder(w).Encode([]models.SemesterTerm{
				{SemesterTerm: "FA25", Name: "Fall 2025"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})))
}

func TestDepartmentByID_Found(t *testing.T) {
	var listCalls int
	c := newLookupClient(t, &listCalls)

	dep, err := c.DepartmentByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "Mathematics", dep.Name)
	require.Equal(t, 1, listCalls, "one list fetch and nothing else")
}

func TestDepartmentByID_NotFound(t *testing.T) {
	c := newLookupClient(t, nil)

	_, err := c.DepartmentByID(context.Background(), 99)
	require.ErrorIs(t, err, common.ErrNotFound)
	require.Contains(t, err.Error(), "99")
}

func TestSemesters(t *testing.T) {
	c := newLookupClient(t, nil)

	semesters, err := c.Semesters(context.Background())
	require.NoError(t, err)
	require.Len(t, semesters, 1)
	require.Equal(t, "FA25", semesters[0].SemesterTerm)
}

func TestDepartments_ListErrorPropagates(t *testing.T) {
	c := NewLookupClient(newTestGateway(t, "t", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})))

	_, err := c.DepartmentByID(context.Background(), 1)
	require.True(t, HasStatus(err, http.StatusUnauthorized))
}
