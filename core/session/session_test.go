package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"bms-asset-manager/core/reconcile"
	"bms-asset-manager/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixture writes a minimal consistent source tree and returns its Config.
func fixture(t *testing.T) Config {
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
	</CTEntries>`)

	reportFile := write("parents.txt", `Model: F-16C
Parent: F-16 Base
BML Version: 2
Textures: f16_body
`)

	standard := filepath.Join(dir, "KoreaObj")
	highres := filepath.Join(dir, "KoreaObj_HiRes")
	require.NoError(t, os.MkdirAll(standard, 0o755))
	require.NoError(t, os.MkdirAll(highres, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(standard, "f16_body.dds"), []byte("dds"), 0o644))

	return Config{
		CatalogFile:       catalogFile,
		ReportFile:        reportFile,
		TextureDir:        standard,
		HighResTextureDir: highres,
	}
}

func TestSessionReload(t *testing.T) {
	sess, err := New(fixture(t), zap.NewNop())
	require.NoError(t, err)

	// No snapshot before the first load.
	assert.Nil(t, sess.Current())

	m, err := sess.Reload(context.Background())
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Same(t, m, sess.Current())

	assert.Len(t, m.Models, 2)
	assert.Equal(t, "f-16 base", m.Parents["f-16c"])
	require.Len(t, m.Usages, 1)
	assert.False(t, m.Usages[0].Missing)
}

func TestSessionFailedReloadKeepsSnapshot(t *testing.T) {
	cfg := fixture(t)
	sess, err := New(cfg, zap.NewNop())
	require.NoError(t, err)

	first, err := sess.Reload(context.Background())
	require.NoError(t, err)

	// Break one source and reload: the error surfaces but the previous
	// snapshot stays active.
	require.NoError(t, os.Remove(cfg.CatalogFile))
	_, err = sess.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, source.IsUnavailable(err))
	assert.Same(t, first, sess.Current())
}

func TestSessionConcurrentReloads(t *testing.T) {
	sess, err := New(fixture(t), zap.NewNop())
	require.NoError(t, err)

	const callers = 8
	results := make([]*reconcile.UnifiedModel, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := sess.Reload(context.Background())
			assert.NoError(t, err)
			results[i] = m
		}(i)
	}
	wg.Wait()

	// Every caller got a usable snapshot, and the overlapping calls
	// coalesced rather than each running its own build.
	ids := make(map[string]bool)
	for _, m := range results {
		require.NotNil(t, m)
		ids[m.ID.String()] = true
	}
	assert.LessOrEqual(t, len(ids), callers)
	require.NotNil(t, sess.Current())
	assert.True(t, ids[sess.Current().ID.String()])
}

func TestSessionOnSwap(t *testing.T) {
	sess, err := New(fixture(t), zap.NewNop())
	require.NoError(t, err)

	var swapped []*reconcile.UnifiedModel
	sess.OnSwap(func(m *reconcile.UnifiedModel) {
		swapped = append(swapped, m)
	})

	m, err := sess.Reload(context.Background())
	require.NoError(t, err)
	require.Len(t, swapped, 1)
	assert.Same(t, m, swapped[0])
}

func TestSessionCustomRules(t *testing.T) {
	cfg := fixture(t)
	rulesPath := filepath.Join(filepath.Dir(cfg.CatalogFile), "rules.yaml")
	require.NoError(t, os.WriteFile(rulesPath, []byte(`suffixes:
  "_spec":
    channel: Specular
    pbr: true
`), 0o644))
	cfg.RulesFile = rulesPath

	sess, err := New(cfg, zap.NewNop())
	require.NoError(t, err)

	rule, ok := sess.Rules().Suffixes["_spec"]
	require.True(t, ok)
	assert.Equal(t, "Specular", rule.Channel)
	assert.True(t, rule.PBR)
}

func TestSessionMissingRulesFile(t *testing.T) {
	cfg := fixture(t)
	cfg.RulesFile = filepath.Join(filepath.Dir(cfg.CatalogFile), "nope.yaml")

	_, err := New(cfg, zap.NewNop())
	require.Error(t, err)
	assert.True(t, source.IsUnavailable(err))
}
