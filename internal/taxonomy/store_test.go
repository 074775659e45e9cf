package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreStartsWithSeed(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "tax.yml"))
	snap := s.Snapshot()

	assert.NotEmpty(t, snap.Taxonomy.DomesticKeywords)
	assert.NotEmpty(t, snap.Taxonomy.OverseasKeywords)
	assert.NotEmpty(t, snap.Taxonomy.GlobalKeywords)
}

func TestLoadFallsBackToSeed(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing.yml"))
	err := s.Load()

	assert.Error(t, err)
	snap := s.Snapshot()
	assert.Equal(t, DefaultSeed(), snap.Taxonomy, "seed survives a failed load")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tax.yml")

	in := Taxonomy{
		DomesticKeywords: []string{"Beijing", "beijing", "上海"}, // duplicates preserved
		OverseasKeywords: []string{"usa", "UK"},
		GlobalKeywords:   []string{"remote"},
	}

	writer := NewStore(path)
	require.NoError(t, writer.Save(in))

	reader := NewStore(path)
	require.NoError(t, reader.Load())

	got := reader.Snapshot().Taxonomy
	assert.Equal(t, in, got, "keyword arrays come back in the same order, duplicates intact")
}

func TestSaveBumpsGenerationAndNotifies(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "tax.yml"))
	before := s.Snapshot().Generation

	var fired int
	unsub := s.Subscribe(func() { fired++ })

	require.NoError(t, s.Save(DefaultSeed()))
	assert.Equal(t, 1, fired)
	assert.Greater(t, s.Snapshot().Generation, before)

	unsub()
	require.NoError(t, s.Save(DefaultSeed()))
	assert.Equal(t, 1, fired, "unsubscribed listener must not fire")
}

func TestSaveRejectsEmptyListWithoutNotify(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "tax.yml"))

	var fired int
	unsub := s.Subscribe(func() { fired++ })
	defer unsub()

	bad := Taxonomy{DomesticKeywords: []string{"beijing"}}
	err := s.Save(bad)

	assert.Error(t, err)
	assert.Zero(t, fired, "failed save must not notify")
	assert.Equal(t, DefaultSeed(), s.Snapshot().Taxonomy, "in-memory state unchanged")
}

func TestSaveKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tax.yml")
	s := NewStore(path)

	require.NoError(t, s.Save(DefaultSeed()))
	second := DefaultSeed()
	second.GlobalKeywords = append(second.GlobalKeywords, "anywhere")
	require.NoError(t, s.Save(second))

	_, err := os.Stat(path + ".bak")
	assert.NoError(t, err, "previous version kept as .bak")
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "tax.yml"))
	snap := s.Snapshot()
	snap.Taxonomy.DomesticKeywords[0] = "mutated"

	assert.NotEqual(t, "mutated", s.Snapshot().Taxonomy.DomesticKeywords[0])
}

func TestValidateWarnsOnDuplicates(t *testing.T) {
	tax := Taxonomy{
		DomesticKeywords: []string{"beijing", "Beijing "},
		OverseasKeywords: []string{"usa"},
		GlobalKeywords:   []string{"remote"},
	}
	vr := Validate(tax)
	assert.True(t, vr.OK())
	assert.NotEmpty(t, vr.Warnings)
}
