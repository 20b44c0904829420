package store

import (
	"context"
	"errors"

	"github.com/prefeitura-rio/app-cnh/internal/models"
	"github.com/stretchr/testify/suite"
)

// StoreContractSuite checks the behaviour every backend must share.
// Backend-specific suites embed it and provide newStore.
type StoreContractSuite struct {
	suite.Suite
	newStore func() Store
	store    Store
	ctx      context.Context
}

func (s *StoreContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *StoreContractSuite) TearDownTest() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
}

func newTestCNH(registro string) *models.CNH {
	return &models.CNH{
		Registro:      registro,
		Nome:          "João Silva",
		CPF:           "123.456.789-00",
		Categoria:     "AB",
		Validade:      "05/04/2033",
		Emissor:       "SSP",
		UFEmissao:     "PB",
		Nacionalidade: "Brasileiro",
	}
}

func (s *StoreContractSuite) TestCreateAndList() {
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))

	cnhs, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(cnhs, 1)
	s.Equal(*newTestCNH("1"), cnhs[0])
}

func (s *StoreContractSuite) TestListEmpty() {
	cnhs, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(cnhs)
}

func (s *StoreContractSuite) TestCreateDuplicateKeepsFirst() {
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))

	duplicate := newTestCNH("1")
	duplicate.Nome = "Outra Pessoa"
	err := s.store.Create(s.ctx, duplicate)
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrCNHAlreadyExists))

	stored, err := s.store.Get(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("João Silva", stored.Nome)

	cnhs, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(cnhs, 1)
}

func (s *StoreContractSuite) TestGet() {
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))

	cnh, err := s.store.Get(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(*newTestCNH("1"), *cnh)

	_, err = s.store.Get(s.ctx, "2")
	s.True(errors.Is(err, models.ErrCNHNotFound))
}

func (s *StoreContractSuite) TestUpdateReturnsStoredRow() {
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))

	updated, err := s.store.Update(s.ctx, "1", map[string]string{
		models.FieldCategoria: "B",
		models.FieldValidade:  "05/04/2035",
	})
	s.Require().NoError(err)
	s.Equal("B", updated.Categoria)
	s.Equal("05/04/2035", updated.Validade)
	s.Equal("João Silva", updated.Nome)
	s.Equal("123.456.789-00", updated.CPF)

	stored, err := s.store.Get(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(*updated, *stored)
}

func (s *StoreContractSuite) TestUpdateWithoutFields() {
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))

	updated, err := s.store.Update(s.ctx, "1", map[string]string{})
	s.Require().NoError(err)
	s.Equal(*newTestCNH("1"), *updated)
}

func (s *StoreContractSuite) TestUpdateMissingLeavesStoreUnchanged() {
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))

	_, err := s.store.Update(s.ctx, "2", map[string]string{models.FieldCategoria: "B"})
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrCNHNotFound))

	cnhs, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(cnhs, 1)
	s.Equal(*newTestCNH("1"), cnhs[0])
}

func (s *StoreContractSuite) TestUpdateRejectsRegistroAndUnknownColumns() {
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))

	_, err := s.store.Update(s.ctx, "1", map[string]string{models.FieldRegistro: "9"})
	s.True(errors.Is(err, models.ErrValidation))

	_, err = s.store.Update(s.ctx, "1", map[string]string{"nome = 'x'; --": "y"})
	s.True(errors.Is(err, models.ErrValidation))

	stored, err := s.store.Get(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(*newTestCNH("1"), *stored)
}

func (s *StoreContractSuite) TestDelete() {
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("2")))

	deleted, err := s.store.Delete(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(*newTestCNH("1"), *deleted)

	cnhs, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(cnhs, 1)
	s.Equal("2", cnhs[0].Registro)

	_, err = s.store.Delete(s.ctx, "1")
	s.True(errors.Is(err, models.ErrCNHNotFound))
}

func (s *StoreContractSuite) TestRecreateAfterDelete() {
	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))
	_, err := s.store.Delete(s.ctx, "1")
	s.Require().NoError(err)

	s.Require().NoError(s.store.Create(s.ctx, newTestCNH("1")))
}

func (s *StoreContractSuite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
	s.NotEmpty(s.store.Backend())
}
