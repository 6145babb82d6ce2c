package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"bms-asset-manager/core/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, loaded bool) (*fiber.App, *session.Session) {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	catalogFile := write("Falcon4_CT.xml", `<CTEntries>
		<CT Num="1"><Name>F-16 Base</Name><EntityType>5</EntityType></CT>
		<CT Num="2"><Name>F-16C</Name><EntityType>5</EntityType></CT>
		<CT Num="3"><Name>Control Tower</Name><EntityType>1</EntityType></CT>
	</CTEntries>`)

	reportFile := write("parents.txt", `Model: F-16C
Parent: F-16 Base
Textures: f16_body, missing_tex
`)

	standard := filepath.Join(dir, "KoreaObj")
	highres := filepath.Join(dir, "KoreaObj_HiRes")
	require.NoError(t, os.MkdirAll(standard, 0o755))
	require.NoError(t, os.MkdirAll(highres, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(standard, "f16_body.dds"), []byte("dds"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(standard, "f16_body_normal.dds"), []byte("dds"), 0o644))

	sess, err := session.New(session.Config{
		CatalogFile:       catalogFile,
		ReportFile:        reportFile,
		TextureDir:        standard,
		HighResTextureDir: highres,
	}, zap.NewNop())
	require.NoError(t, err)

	if loaded {
		_, err = sess.Reload(context.Background())
		require.NoError(t, err)
	}

	app := fiber.New()
	NewHandler(sess, zap.NewNop()).RegisterRoutes(app)
	return app, sess
}

func decodeList(t *testing.T, resp io.Reader) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp).Decode(&out))
	return out
}

func TestHandleModels(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/models", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, resp.Body), 3)

	resp, err = app.Test(httptest.NewRequest("GET", "/models?category=Feature", nil))
	require.NoError(t, err)
	entries := decodeList(t, resp.Body)
	require.Len(t, entries, 1)
	assert.Equal(t, "Control Tower", entries[0]["name"])

	resp, err = app.Test(httptest.NewRequest("GET", "/models?ct=2", nil))
	require.NoError(t, err)
	entries = decodeList(t, resp.Body)
	require.Len(t, entries, 1)
	assert.Equal(t, "F-16C", entries[0]["name"])

	resp, err = app.Test(httptest.NewRequest("GET", "/models?name=f-16", nil))
	require.NoError(t, err)
	assert.Len(t, decodeList(t, resp.Body), 2)
}

func TestHandleModelsNoSnapshot(t *testing.T) {
	app, _ := newTestApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/models", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleParentChain(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/models/f-16c/chain", nil))
	require.NoError(t, err)
	chain := decodeList(t, resp.Body)
	require.Len(t, chain, 2)
	assert.Equal(t, "F-16 Base", chain[0]["name"])
	assert.Equal(t, "F-16C", chain[1]["name"])
}

func TestHandleModelTextures(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/models/F-16C/textures", nil))
	require.NoError(t, err)
	records := decodeList(t, resp.Body)

	// Two matching files plus the phantom for the missing reference.
	require.Len(t, records, 3)
	var missing int
	for _, record := range records {
		if record["exists"] == false {
			missing++
		}
	}
	assert.Equal(t, 1, missing)
}

func TestHandleTextures(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/textures/unused", nil))
	require.NoError(t, err)
	assert.Empty(t, decodeList(t, resp.Body))

	resp, err = app.Test(httptest.NewRequest("GET", "/textures/pbr", nil))
	require.NoError(t, err)
	records := decodeList(t, resp.Body)
	require.Len(t, records, 1)
	assert.Equal(t, "f16_body_normal", records[0]["name"])
}

func TestHandleInconsistencies(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/inconsistencies", nil))
	require.NoError(t, err)
	records := decodeList(t, resp.Body)
	require.Len(t, records, 1)
	assert.Equal(t, "missing_texture", records[0]["kind"])
}

func TestHandleStatusAndReload(t *testing.T) {
	app, sess := newTestApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	var status map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, false, status["loaded"])

	resp, err = app.Test(httptest.NewRequest("POST", "/reload", nil), 10000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, sess.Current())

	resp, err = app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	status = map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, true, status["loaded"])
	assert.Equal(t, sess.Current().ID.String(), status["load_id"])
}

func TestHandleReloadFailure(t *testing.T) {
	dir := t.TempDir()
	sess, err := session.New(session.Config{
		CatalogFile:       filepath.Join(dir, "nope.xml"),
		ReportFile:        filepath.Join(dir, "nope.txt"),
		TextureDir:        dir,
		HighResTextureDir: dir,
	}, zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	NewHandler(sess, zap.NewNop()).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("POST", "/reload", nil), 10000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["reloaded"])
	assert.Contains(t, body["error"], "source unavailable")
}
