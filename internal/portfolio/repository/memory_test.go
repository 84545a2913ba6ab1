package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pdallen/portfolio/backend/internal/portfolio"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoActivePortfolio(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	_, err := r.ActivePortfolio(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	r.AddPortfolio(portfolio.Document{"active": false, "hero": "old"})
	_, err = r.ActivePortfolio(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	r.AddPortfolio(portfolio.Document{"active": true, "hero": "current"})
	got, err := r.ActivePortfolio(ctx)
	require.NoError(t, err)
	require.Equal(t, "current", got["hero"])
	require.Contains(t, got, "_id")

	// dropping fields on the result leaves the stored copy intact
	delete(got, "_id")
	again, err := r.ActivePortfolio(ctx)
	require.NoError(t, err)
	require.Contains(t, again, "_id")
}

func TestMemoryRepoLatestActiveWins(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	now := time.Now().UTC()

	r.AddSkills(portfolio.Document{"active": true, "v": "newer", "updated_at": now})
	r.AddSkills(portfolio.Document{"active": true, "v": "older", "updated_at": now.Add(-time.Hour)})
	got, err := r.ActiveSkills(ctx)
	require.NoError(t, err)
	require.Equal(t, "newer", got["v"])

	// without timestamps the most recent insertion wins
	r2 := NewMemoryRepo()
	r2.AddSkills(portfolio.Document{"active": true, "v": "first"})
	r2.AddSkills(portfolio.Document{"active": true, "v": "second"})
	got, err = r2.ActiveSkills(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", got["v"])
}

func TestMemoryRepoProjectsAndInserts(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	r.AddProject(portfolio.Document{"title": "a", "active": true})
	r.AddProject(portfolio.Document{"title": "b", "active": false})
	r.AddProject(portfolio.Document{"title": "c", "active": true})

	list, err := r.ActiveProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "a", list[0]["title"])
	require.Equal(t, "c", list[1]["title"])

	require.NoError(t, r.InsertContactSubmission(ctx, &portfolio.ContactSubmission{ID: "x", Status: portfolio.StatusNew}))
	require.NoError(t, r.InsertAudioInteraction(ctx, &portfolio.AudioInteraction{ID: "y", Action: "play"}))
	require.Len(t, r.ContactSubmissions(), 1)
	require.Len(t, r.AudioInteractions(), 1)
}

func TestMemoryRepoSetError(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	boom := errors.New("store down")
	r.SetError(boom)

	_, err := r.ActivePortfolio(ctx)
	require.ErrorIs(t, err, boom)
	_, err = r.ActiveProjects(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, r.InsertContactSubmission(ctx, &portfolio.ContactSubmission{}), boom)
	require.ErrorIs(t, r.Ping(ctx), boom)
	require.Empty(t, r.ContactSubmissions())

	r.SetError(nil)
	require.NoError(t, r.Ping(ctx))
}
