package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"ekrishi/models"
	"ekrishi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	status, raw := doRaw(t, app, method, path, body)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return status, out
}

func doRaw(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

type fakeTeams struct {
	teams []models.Team
	err   error
}

func (f *fakeTeams) InitSchema(ctx context.Context) error { return f.err }

func (f *fakeTeams) Insert(ctx context.Context, name, captain string) (uint, error) {
	if f.err != nil {
		return 0, f.err
	}
	id := uint(len(f.teams) + 1)
	f.teams = append(f.teams, models.Team{ID: id, Name: name, Captain: captain})
	return id, nil
}

func (f *fakeTeams) ListAll(ctx context.Context) ([]models.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Team{}, f.teams...), nil
}

type fakeWeather struct {
	weather  *utils.Weather
	err      error
	lastCity string
}

func (f *fakeWeather) CurrentWeather(ctx context.Context, city string) (*utils.Weather, error) {
	f.lastCity = city
	if f.err != nil {
		return nil, f.err
	}
	w := *f.weather
	w.City = city
	return &w, nil
}

var errBoom = errors.New("boom")
