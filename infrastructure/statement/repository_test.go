package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muramets/Believe/internal/domain"
)

func TestMemoryRepository_SaveEGet(t *testing.T) {
	repo := NewMemoryRepository(time.Hour)

	saved, err := repo.Save(&domain.Statement{Filename: "statement.csv", Delimiter: ","})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.UploadedAt.IsZero())
	assert.Equal(t, 1, repo.Count())

	found, err := repo.Get(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "statement.csv", found.Filename)
}

func TestMemoryRepository_GetInexistente(t *testing.T) {
	repo := NewMemoryRepository(time.Hour)

	found, err := repo.Get("nao-existe")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := NewMemoryRepository(time.Hour)

	saved, err := repo.Save(&domain.Statement{Filename: "statement.csv"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(saved.ID))
	assert.Equal(t, 0, repo.Count())

	found, err := repo.Get(saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryRepository_DeleteExpired(t *testing.T) {
	repo := NewMemoryRepository(time.Hour)

	saved, err := repo.Save(&domain.Statement{Filename: "statement.csv"})
	require.NoError(t, err)

	// Dentro do TTL nada é removido
	assert.Equal(t, 0, repo.DeleteExpired(time.Now().Add(30*time.Minute)))
	assert.Equal(t, 1, repo.Count())

	// Depois do TTL o extrato expira
	assert.Equal(t, 1, repo.DeleteExpired(time.Now().Add(2*time.Hour)))
	assert.Equal(t, 0, repo.Count())

	found, err := repo.Get(saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryRepository_AcessoRenovaTTL(t *testing.T) {
	repo := NewMemoryRepository(time.Minute)

	saved, err := repo.Save(&domain.Statement{Filename: "statement.csv"})
	require.NoError(t, err)

	// O Get renova o último acesso, então o extrato sobrevive a um corte
	// logo acima do TTL original
	_, err = repo.Get(saved.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, repo.DeleteExpired(time.Now().Add(59*time.Second)))
	assert.Equal(t, 1, repo.Count())
}
