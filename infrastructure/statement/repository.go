// Package statement guarda os extratos carregados durante a sessão.
// Nada sai da memória do processo: não há banco, e extratos expirados são
// descartados pelo janitor.
package statement

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/muramets/Believe/internal/domain"
)

// Repository define o armazenamento de extratos da sessão
type Repository interface {
	// Save atribui um ID ao extrato e o guarda
	Save(stmt *domain.Statement) (*domain.Statement, error)

	// Get devolve o extrato ou nil quando não existe (ou expirou)
	Get(id string) (*domain.Statement, error)

	// Delete descarta o extrato
	Delete(id string) error

	// DeleteExpired remove extratos sem acesso há mais tempo que o TTL e
	// devolve quantos foram removidos
	DeleteExpired(now time.Time) int

	// Count devolve o número de extratos vivos
	Count() int
}

type entry struct {
	statement      *domain.Statement
	lastAccessedAt time.Time
}

// MemoryRepository implementa Repository com um mapa protegido por mutex.
// O acesso renova o TTL do extrato.
type MemoryRepository struct {
	mutex   sync.RWMutex
	ttl     time.Duration
	entries map[string]*entry
}

// NewMemoryRepository cria um repositório de extratos em memória
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

func (r *MemoryRepository) Save(stmt *domain.Statement) (*domain.Statement, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do extrato")
	}

	now := time.Now()
	stmt.ID = id
	stmt.UploadedAt = now

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entries[id] = &entry{
		statement:      stmt,
		lastAccessedAt: now,
	}

	return stmt, nil
}

func (r *MemoryRepository) Get(id string) (*domain.Statement, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}

	e.lastAccessedAt = time.Now()
	return e.statement, nil
}

func (r *MemoryRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.entries, id)
	return nil
}

func (r *MemoryRepository) DeleteExpired(now time.Time) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	removed := 0
	for id, e := range r.entries {
		if now.Sub(e.lastAccessedAt) > r.ttl {
			delete(r.entries, id)
			removed++
		}
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": len(r.entries),
		}).Info("Extratos expirados descartados")
	}

	return removed
}

func (r *MemoryRepository) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.entries)
}
