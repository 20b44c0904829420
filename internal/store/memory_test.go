package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	StoreContractSuite
}

func TestMemoryStoreSuite(t *testing.T) {
	s := new(MemoryStoreSuite)
	s.newStore = func() Store { return NewMemoryStore() }
	suite.Run(t, s)
}

func TestMemoryStore_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, registro := range []string{"30", "10", "20"} {
		require.NoError(t, s.Create(ctx, newTestCNH(registro)))
	}

	cnhs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, cnhs, 3)
	assert.Equal(t, "30", cnhs[0].Registro)
	assert.Equal(t, "10", cnhs[1].Registro)
	assert.Equal(t, "20", cnhs[2].Registro)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Create(ctx, newTestCNH("1")))

	cnh, err := s.Get(ctx, "1")
	require.NoError(t, err)
	cnh.Nome = "Alterado"

	cnhs, err := s.List(ctx)
	require.NoError(t, err)
	cnhs[0].Categoria = "Z"

	stored, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "João Silva", stored.Nome)
	assert.Equal(t, "AB", stored.Categoria)
}

func TestMemoryStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Create(ctx, newTestCNH(fmt.Sprintf("%d", i%10)))
		}(i)
	}
	wg.Wait()

	cnhs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cnhs, 10)
}
