package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAcademicClient(srv *httptest.Server, retries int) *AcademicClient {
	return &AcademicClient{client: newBaseClient(srv.URL, srv.Client(), retries, zerolog.Nop())}
}

func TestGetGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups/g1", r.URL.Path)
		fmt.Fprint(w, `{"group":{"_id":"g1","courseId":"c1","academicYearId":"y1","students":["a1","a2"]}}`)
	}))
	defer srv.Close()

	group, err := newAcademicClient(srv, 1).GetGroup(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", group.ID)
	assert.Equal(t, "c1", group.CourseID)
	assert.Equal(t, []string{"a1", "a2"}, group.Students)
}

func TestGetGroupNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newAcademicClient(srv, 3).GetGroup(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	// 404 is a definitive answer, it must not retry
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetGroupNullBodyIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"group":null}`)
	}))
	defer srv.Close()

	_, err := newAcademicClient(srv, 1).GetGroup(context.Background(), "g1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetJSONRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"group":{"_id":"g1"}}`)
	}))
	defer srv.Close()

	group, err := newAcademicClient(srv, 3).GetGroup(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", group.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetJSONExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newAcademicClient(srv, 2).GetGroup(context.Background(), "g1")
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetJSONUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newAcademicClient(srv, 2)
	srv.Close()

	_, err := client.GetGroup(context.Background(), "g1")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestGetCourseWithoutSystem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/c1", r.URL.Path)
		fmt.Fprint(w, `{"course":{"_id":"c1","universityId":"u1","name":"Algorithms"},"system":null}`)
	}))
	defer srv.Close()

	out, err := newAcademicClient(srv, 1).GetCourse(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", out.Course.ID)
	assert.Empty(t, out.System.EvaluationGroups)
}

func TestGetItemsByGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/evaluation-items/by-group/g1", r.URL.Path)
		fmt.Fprint(w, `{"items":[{"_id":"i1","name":"Midterm","evaluationTypeId":"t1","weight":60,"minGrade":5}]}`)
	}))
	defer srv.Close()

	ec := &EvaluationClient{client: newBaseClient(srv.URL, srv.Client(), 1, zerolog.Nop())}
	items, err := ec.GetItemsByGroup(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Midterm", items[0].Name)
	require.NotNil(t, items[0].MinGrade)
	assert.Equal(t, 5.0, *items[0].MinGrade)
}

func TestGetAccountsByUniversity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/by-university/u1", r.URL.Path)
		fmt.Fprint(w, `{"accounts":[{"_id":"a1","email":"alice@uni.edu"}]}`)
	}))
	defer srv.Close()

	ic := &IdentityClient{client: newBaseClient(srv.URL, srv.Client(), 1, zerolog.Nop())}
	accounts, err := ic.GetAccountsByUniversity(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "alice@uni.edu", accounts[0].Email)
}
