package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

func newTestStore(t *testing.T) (*Store, *MemKV) {
	t.Helper()
	kv := NewMemKV()
	s, err := New(kv, zap.NewNop())
	require.NoError(t, err)
	return s, kv
}

func TestStore_ListEmptyOnMissingStorage(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.List())
}

func TestStore_ListEmptyOnCorruptStorage(t *testing.T) {
	s, kv := newTestStore(t)
	require.NoError(t, kv.Set("launchpad_projects", []byte("{not json")))
	assert.Empty(t, s.List())
}

func TestStore_CreateSetsCurrent(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.Create("Plantly")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, venture.CurrentSchemaVersion, p.SchemaVersion)
	assert.Equal(t, venture.DefaultMarketShare, p.Data.Competitor.MarketShare)

	cur, err := s.CurrentID()
	require.NoError(t, err)
	assert.Equal(t, p.ID, cur)
}

func TestStore_CreateEmptyName(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Create("")
	assert.ErrorIs(t, err, venture.ErrEmptyProjectName)
}

func TestStore_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.Create("Plantly")
	require.NoError(t, err)

	naming := venture.NamingPhase{
		Suggestions:  []string{"Plantly", "Verdant"},
		SelectedName: "Plantly",
		Rationale:    "short and green",
	}
	_, err = s.Update(p.ID, venture.DataPatch{Naming: &naming})
	require.NoError(t, err)

	logo := venture.LogoPhase{Prompt: "a leaf mark", ImageURL: "data:image/png;base64,aaaa", Style: venture.LogoStyleMinimal}
	_, err = s.Update(p.ID, venture.DataPatch{Logo: &logo})
	require.NoError(t, err)

	got, err := s.Get(p.ID)
	require.NoError(t, err)

	assert.Equal(t, naming, got.Data.Naming)
	assert.Equal(t, logo, got.Data.Logo)
	// Untouched phases keep their defaults.
	assert.Equal(t, venture.DefaultData().Website, got.Data.Website)
	assert.Equal(t, venture.DefaultData().Gauntlet, got.Data.Gauntlet)
}

func TestStore_PartialUpdateIsolation(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.Create("Plantly")
	require.NoError(t, err)

	website := venture.WebsitePhase{Sitemap: "- Hero", HeroCopy: "Grow.", ColorPalette: []string{"#0f0"}}
	_, err = s.Update(p.ID, venture.DataPatch{Website: &website})
	require.NoError(t, err)

	before, err := s.Get(p.ID)
	require.NoError(t, err)
	websiteJSON, err := json.Marshal(before.Data.Website)
	require.NoError(t, err)

	// Updating marketing must leave website byte-for-byte unchanged.
	marketing := venture.MarketingPhase{Strategy: "niche first", SocialPosts: []string{"post"}, Checklist: []string{}, Campaigns: []venture.Campaign{}, Concepts: []venture.CampaignConcept{}}
	_, err = s.Update(p.ID, venture.DataPatch{Marketing: &marketing})
	require.NoError(t, err)

	after, err := s.Get(p.ID)
	require.NoError(t, err)
	afterJSON, err := json.Marshal(after.Data.Website)
	require.NoError(t, err)

	assert.Equal(t, string(websiteJSON), string(afterJSON))
	assert.Equal(t, marketing, after.Data.Marketing)
}

func TestStore_UpdateDerivesBadges(t *testing.T) {
	s, _ := newTestStore(t)
	p, err := s.Create("Plantly")
	require.NoError(t, err)
	assert.Empty(t, p.Data.Badges)

	updated, err := s.Update(p.ID, venture.DataPatch{
		Idea: &venture.IdeaPhase{Description: "d", IsComplete: true},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{venture.BadgeVisionary}, updated.Data.Badges)

	updated, err = s.Update(p.ID, venture.DataPatch{
		Naming: &venture.NamingPhase{SelectedName: "Plantly"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{venture.BadgeVisionary, venture.BadgeNamed}, updated.Data.Badges)
}

func TestStore_UpdateNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Update("nope", venture.DataPatch{})
	assert.ErrorIs(t, err, venture.ErrProjectNotFound)
}

func TestStore_Rename(t *testing.T) {
	s, _ := newTestStore(t)
	p, err := s.Create("Plantly")
	require.NoError(t, err)

	renamed, err := s.Rename(p.ID, "Verdant")
	require.NoError(t, err)
	assert.Equal(t, "Verdant", renamed.Name)

	_, err = s.Rename("nope", "x")
	assert.ErrorIs(t, err, venture.ErrProjectNotFound)
}

func TestStore_DeleteClearsPointerOnlyForCurrent(t *testing.T) {
	s, _ := newTestStore(t)

	a, err := s.Create("A")
	require.NoError(t, err)
	b, err := s.Create("B")
	require.NoError(t, err)

	// B is current; deleting A leaves the pointer alone.
	require.NoError(t, s.Delete(a.ID))
	cur, err := s.CurrentID()
	require.NoError(t, err)
	assert.Equal(t, b.ID, cur)

	// Deleting the current project clears the pointer.
	require.NoError(t, s.Delete(b.ID))
	cur, err = s.CurrentID()
	require.NoError(t, err)
	assert.Empty(t, cur)
}

func TestStore_DeleteNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	assert.ErrorIs(t, s.Delete("nope"), venture.ErrProjectNotFound)
}

func TestStore_ConcurrentCreates(t *testing.T) {
	s, _ := newTestStore(t)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Create(fmt.Sprintf("Project %d", i))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, s.List(), n, "every created project must survive")
}

func TestStore_ConcurrentUpdatesBothLand(t *testing.T) {
	s, _ := newTestStore(t)
	p, err := s.Create("Plantly")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := s.Update(p.ID, venture.DataPatch{
			Naming: &venture.NamingPhase{SelectedName: "Plantly"},
		})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := s.Update(p.ID, venture.DataPatch{
			Website: &venture.WebsitePhase{Sitemap: "- Hero"},
		})
		assert.NoError(t, err)
	}()
	wg.Wait()

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plantly", got.Data.Naming.SelectedName)
	assert.Equal(t, "- Hero", got.Data.Website.Sitemap)
}

func TestStore_DeleteLogsPointerReadFailure(t *testing.T) {
	kv := NewMemKV()
	core, logs := observer.New(zap.WarnLevel)
	s, err := New(kv, zap.New(core))
	require.NoError(t, err)

	p, err := s.Create("Plantly")
	require.NoError(t, err)

	kv.FailGet = func(key string) error {
		if key == "launchpad_current_project_id" {
			return errors.New("io error")
		}
		return nil
	}

	// The project itself is removed; the unreadable pointer is logged,
	// not silently dropped.
	require.NoError(t, s.Delete(p.ID))
	assert.Empty(t, s.List())
	require.Equal(t, 1, logs.FilterMessage("failed to read current project during delete").Len())
}

func TestStore_GetMigratesLegacyDocument(t *testing.T) {
	s, kv := newTestStore(t)

	legacy := `[{"id": "p1", "name": "old", "data": {"idea": {"description": "d"}}}]`
	require.NoError(t, kv.Set("launchpad_projects", []byte(legacy)))

	got, err := s.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, venture.CurrentSchemaVersion, got.SchemaVersion)
	assert.Equal(t, venture.DefaultMarketShare, got.Data.Competitor.MarketShare)

	// Reading twice yields identical results.
	again, err := s.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestStore_WriteFailureSurfaces(t *testing.T) {
	kv := NewMemKV()
	s, err := New(kv, zap.NewNop())
	require.NoError(t, err)

	p, err := s.Create("Plantly")
	require.NoError(t, err)

	kv.FailSet = errors.New("disk full")
	_, err = s.Update(p.ID, venture.DataPatch{Idea: &venture.IdeaPhase{Description: "x"}})
	assert.ErrorContains(t, err, "disk full")
}

func TestFileKV_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", []byte("v")))
	got, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, kv.Delete("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, kv.Delete("k"))
}
