package repository_test

import (
	"context"
	"errors"
	"testing"

	"hotelsys/infras/otel/mocks"
	"hotelsys/internal/store"
	"hotelsys/shared/failure"
	"hotelsys/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guest struct {
	GuestID string `json:"guest_id"`
	Name    string `json:"name"`
}

func (g guest) Key() string {
	return g.GuestID
}

func newRepo() repository.Repository[guest] {
	return repository.NewRepository[guest]("guest", "guests", store.NewMemoryBackend(), mocks.NewOtel())
}

func TestRepository_InsertGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	require.NoError(t, repo.Insert(ctx, guest{GuestID: "G1", Name: "Ana"}))

	got, err := repo.Get(ctx, "G1")
	require.NoError(t, err)
	assert.Equal(t, guest{GuestID: "G1", Name: "Ana"}, got)

	_, err = repo.Get(ctx, "G2")
	assert.True(t, failure.Is(err, failure.KindNotFound))
}

func TestRepository_InsertDuplicateLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	require.NoError(t, repo.Insert(ctx, guest{GuestID: "G1", Name: "Ana"}))

	err := repo.Insert(ctx, guest{GuestID: "G1", Name: "Impostor"})

	assert.True(t, failure.Is(err, failure.KindDuplicateKey))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []guest{{GuestID: "G1", Name: "Ana"}}, all)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	require.NoError(t, repo.Insert(ctx, guest{GuestID: "G1", Name: "Ana"}))

	err := repo.Update(ctx, "G1", func(g *guest) error {
		g.Name = "Ana Maria"

		return nil
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "G1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)

	err = repo.Update(ctx, "G404", func(*guest) error { return nil })
	assert.True(t, failure.Is(err, failure.KindNotFound))
}

func TestRepository_UpdateMutateErrorAborts(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	require.NoError(t, repo.Insert(ctx, guest{GuestID: "G1", Name: "Ana"}))

	stop := errors.New("stop")
	err := repo.Update(ctx, "G1", func(g *guest) error {
		g.Name = "changed"

		return stop
	})
	assert.ErrorIs(t, err, stop)

	err = repo.Update(ctx, "G1", func(g *guest) error {
		g.GuestID = "G2"

		return nil
	})
	assert.True(t, failure.Is(err, failure.KindBadRequest))

	got, err := repo.Get(ctx, "G1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
}

func TestRepository_DeleteExist(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()
	require.NoError(t, repo.Insert(ctx, guest{GuestID: "G1"}))
	require.NoError(t, repo.Insert(ctx, guest{GuestID: "G2"}))

	err := repo.Delete(ctx, "G404")
	assert.True(t, failure.Is(err, failure.KindNotFound))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "G1"))

	exist, err := repo.Exist(ctx, "G1")
	require.NoError(t, err)
	assert.False(t, exist)

	exist, err = repo.Exist(ctx, "G2")
	require.NoError(t, err)
	assert.True(t, exist)
}
