// Package facades wraps external collaborators behind small interfaces.
package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/models"
)

// ExerciseProviderFacade fetches catalog and exercise data from the external
// exercise provider's REST API. It is only used by the offline seed import.
type ExerciseProviderFacade struct {
	baseURL string
	apiKey  string
	apiHost string
	client  *http.Client
}

// NewExerciseProviderFacade creates a facade for the provider at baseURL,
// authenticating with the given rapidapi-style key and host headers.
func NewExerciseProviderFacade(baseURL, apiKey, apiHost string) *ExerciseProviderFacade {
	return &ExerciseProviderFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		apiHost: apiHost,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *ExerciseProviderFacade) getJSON(ctx context.Context, path string, out any) error {
	url := f.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-rapidapi-key", f.apiKey)
	req.Header.Set("x-rapidapi-host", f.apiHost)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("provider request failed", "url", url, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("provider returned non-200", "url", url, "status", resp.StatusCode)
		return fmt.Errorf("provider returned status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// ListEquipment fetches the equipment name list.
func (f *ExerciseProviderFacade) ListEquipment(ctx context.Context) ([]string, error) {
	var names []string
	if err := f.getJSON(ctx, "/equipmentList", &names); err != nil {
		return nil, err
	}
	return names, nil
}

// ListTargets fetches the target-muscle name list.
func (f *ExerciseProviderFacade) ListTargets(ctx context.Context) ([]string, error) {
	var names []string
	if err := f.getJSON(ctx, "/targetList", &names); err != nil {
		return nil, err
	}
	return names, nil
}

// ListExercises fetches the full exercise catalog.
func (f *ExerciseProviderFacade) ListExercises(ctx context.Context) ([]models.ProviderExercise, error) {
	var exercises []models.ProviderExercise
	if err := f.getJSON(ctx, "?limit=0", &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}
