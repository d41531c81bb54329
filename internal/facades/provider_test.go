package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reginayiwang/movement-breaks/internal/models"
)

func TestExerciseProviderFacade_ListEquipment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/equipmentList", r.URL.Path)
		assert.Equal(t, "testkey", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "testhost", r.Header.Get("x-rapidapi-host"))
		json.NewEncoder(w).Encode([]string{"body weight", "dumbbell"})
	}))
	defer srv.Close()

	facade := NewExerciseProviderFacade(srv.URL, "testkey", "testhost")

	names, err := facade.ListEquipment(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"body weight", "dumbbell"}, names)
}

func TestExerciseProviderFacade_ListTargets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/targetList", r.URL.Path)
		json.NewEncoder(w).Encode([]string{"abs", "biceps"})
	}))
	defer srv.Close()

	facade := NewExerciseProviderFacade(srv.URL, "testkey", "testhost")

	names, err := facade.ListTargets(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"abs", "biceps"}, names)
}

func TestExerciseProviderFacade_ListExercises(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]models.ProviderExercise{
			{
				Name:         "sit-up",
				GifURL:       "http://example.com/situp.gif",
				Instructions: []string{"lie down", "sit up"},
				Equipment:    "body weight",
				Target:       "abs",
			},
		})
	}))
	defer srv.Close()

	facade := NewExerciseProviderFacade(srv.URL, "testkey", "testhost")

	exercises, err := facade.ListExercises(context.Background())
	assert.NoError(t, err)
	assert.Len(t, exercises, 1)
	assert.Equal(t, "sit-up", exercises[0].Name)
	assert.Equal(t, "http://example.com/situp.gif", exercises[0].GifURL)
	assert.Equal(t, []string{"lie down", "sit up"}, exercises[0].Instructions)
}

func TestExerciseProviderFacade_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	facade := NewExerciseProviderFacade(srv.URL, "badkey", "testhost")

	_, err := facade.ListEquipment(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
