package services

import (
	"context"
	"errors"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/gateway/gateway_mocks"
	"finance-tracker/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvestmentServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	gateway *gateway_mocks.MockInvestmentGatewayInterface
	service InvestmentServiceInterface
}

func TestInvestmentServiceSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}

func (s *InvestmentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = gateway_mocks.NewMockInvestmentGatewayInterface(s.ctrl)
	s.service = NewInvestmentService(s.gateway, nil, discardLogger())
}

func (s *InvestmentServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func sampleInvestment(investmentType models.InvestmentType, amount int64) models.Investment {
	return models.Investment{
		ID:           string(investmentType) + "-" + decimal.NewFromInt(amount).String(),
		Name:         "position",
		Type:         investmentType,
		Amount:       decimal.NewFromInt(amount),
		PurchaseDate: day("2025-01-10"),
	}
}

func (s *InvestmentServiceTestSuite) TestCreate_Invalid() {
	_, err := s.service.Create(context.Background(), dto.CreateInvestmentRequest{Name: "X", Type: "REAL_ESTATE", Amount: "10", PurchaseDate: "2025-01-01"})
	s.Error(err)
}

func (s *InvestmentServiceTestSuite) TestUpdate() {
	_, err := s.service.Update(context.Background(), "i1", dto.UpdateInvestmentRequest{})
	s.ErrorIs(err, ErrEmptyUpdate)

	name := "Treasury 2030"
	req := dto.UpdateInvestmentRequest{Name: &name}
	updated := sampleInvestment(models.InvestmentTypeFixedIncome, 1000)
	s.gateway.EXPECT().UpdateInvestment(gomock.Any(), "i1", req).Return(&updated, nil)

	result, err := s.service.Update(context.Background(), "i1", req)
	s.Require().NoError(err)
	s.Equal(updated.ID, result.ID)
}

func (s *InvestmentServiceTestSuite) TestDelete_Error() {
	s.gateway.EXPECT().DeleteInvestment(gomock.Any(), "i1").Return(errors.New("gone"))
	s.ErrorContains(s.service.Delete(context.Background(), "i1"), "failed to delete investment")
}

func (s *InvestmentServiceTestSuite) TestPortfolio() {
	stock := models.InvestmentTypeStock
	fund := models.InvestmentTypeFund
	s.gateway.EXPECT().ListInvestments(gomock.Any()).Return([]models.Investment{
		sampleInvestment(stock, 400),
		sampleInvestment(fund, 400),
		sampleInvestment(stock, 200),
	}, nil)

	portfolio, err := s.service.Portfolio(context.Background())
	s.Require().NoError(err)
	s.Equal(3, portfolio.Count)
	s.True(portfolio.Total.Equal(decimal.NewFromInt(1000)))
	s.True(portfolio.ByType[stock].Equal(decimal.NewFromInt(600)))
	s.True(portfolio.Allocations[stock].Equal(decimal.NewFromInt(60)), portfolio.Allocations[stock].String())
	s.True(portfolio.Allocations[fund].Equal(decimal.NewFromInt(40)), portfolio.Allocations[fund].String())
}

func (s *InvestmentServiceTestSuite) TestPortfolio_Empty() {
	s.gateway.EXPECT().ListInvestments(gomock.Any()).Return(nil, nil)

	portfolio, err := s.service.Portfolio(context.Background())
	s.Require().NoError(err)
	s.Zero(portfolio.Count)
	s.True(portfolio.Total.IsZero())
	s.Empty(portfolio.Allocations)
}
