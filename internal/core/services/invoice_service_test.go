package services_test

import (
	"context"
	"testing"

	"github.com/findash/finance_dashboard_app/internal/apperrors"
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
	"github.com/findash/finance_dashboard_app/internal/core/services"
	"github.com/findash/finance_dashboard_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockBillRepo    *MockBillRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)

	guard := services.NewSnapshotGuard()
	reconciler := services.NewReconcilerService(guard, suite.mockInvoiceRepo, suite.mockBillRepo, suite.mockTxnRepo)
	suite.service = services.NewInvoiceService(guard, suite.mockInvoiceRepo, reconciler)
}

// expectReconcilePass wires the mock calls a no-op reconciliation makes after
// a successful mutation.
func (suite *InvoiceServiceTestSuite) expectReconcilePass(ctx context.Context, invoices []domain.Invoice) {
	suite.mockInvoiceRepo.On("ListInvoices", ctx).Return(invoices, nil)
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientName:      "Acme Corp",
		CreationDate:    "2026-05-04",
		ReferenceNumber: "INV-001",
		Amount:          decimal.NewFromInt(4800),
	}
	stored := []domain.Invoice{
		{
			ClientName:      req.ClientName,
			CreationDate:    domain.ParseDate(req.CreationDate),
			ReferenceNumber: req.ReferenceNumber,
			Amount:          req.Amount,
			Status:          domain.Unpaid,
		},
	}

	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.ReferenceNumber == "INV-001" && inv.Status == domain.Unpaid && inv.Amount.Equal(req.Amount)
	})).Return(nil).Once()
	suite.expectReconcilePass(ctx, stored)

	invoices, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(invoices, 1)
	suite.Equal(domain.Unpaid, invoices[0].Status, "new invoices always start unpaid")
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsInvalidDate() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientName:      "Acme Corp",
		CreationDate:    "04/05/2026",
		ReferenceNumber: "INV-001",
		Amount:          decimal.NewFromInt(100),
	}

	invoices, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoices)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientName:      "Acme Corp",
		CreationDate:    "2026-05-04",
		ReferenceNumber: "INV-001",
		Amount:          decimal.NewFromInt(-5),
	}

	_, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateReferencePropagates() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientName:      "Acme Corp",
		CreationDate:    "2026-05-04",
		ReferenceNumber: "INV-001",
		Amount:          decimal.NewFromInt(100),
	}

	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Return(apperrors.ErrDuplicate).Once()

	invoices, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(invoices)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	existing := domain.Invoice{
		ClientName:      "Acme Corp",
		CreationDate:    domain.ParseDate("2026-05-04"),
		ReferenceNumber: "INV-001",
		Amount:          decimal.NewFromInt(100),
		Status:          domain.Unpaid,
		Category:        "Consulting",
	}
	newAmount := decimal.NewFromInt(250)
	req := dto.UpdateInvoiceRequest{Amount: &newAmount}

	suite.mockInvoiceRepo.On("FindInvoiceByReference", ctx, "INV-001").Return(&existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, "INV-001", mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Amount.Equal(newAmount) && inv.ClientName == "Acme Corp" && inv.Category == "Consulting"
	})).Return(nil).Once()
	suite.expectReconcilePass(ctx, []domain.Invoice{existing})

	_, err := suite.service.UpdateInvoice(ctx, "INV-001", req)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotFound() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("FindInvoiceByReference", ctx, "INV-404").
		Return(nil, apperrors.ErrNotFound).Once()

	invoices, err := suite.service.UpdateInvoice(ctx, "INV-404", dto.UpdateInvoiceRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(invoices)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Success() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, "INV-001").Return(nil).Once()
	suite.expectReconcilePass(ctx, []domain.Invoice{})

	invoices, err := suite.service.DeleteInvoice(ctx, "INV-001")

	suite.Require().NoError(err)
	suite.Empty(invoices)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_AppliesSortAndFilter() {
	ctx := context.Background()
	stored := []domain.Invoice{
		{ClientName: "Globex Industries", ReferenceNumber: "INV-002", CreationDate: domain.ParseDate("2026-05-18"), Amount: decimal.NewFromInt(1000)},
		{ClientName: "Acme Corp", ReferenceNumber: "INV-001", CreationDate: domain.ParseDate("2026-05-04"), Amount: decimal.NewFromInt(4800)},
		{ClientName: "Acme Corp", ReferenceNumber: "INV-007", CreationDate: domain.ParseDate("2026-08-03"), Amount: decimal.NewFromInt(5200)},
	}
	suite.mockInvoiceRepo.On("ListInvoices", ctx).Return(stored, nil).Once()

	params := dto.ListRecordsParams{SortBy: "amount", SortDir: "DESC", Search: "acme"}
	invoices, err := suite.service.ListInvoices(ctx, params)

	suite.Require().NoError(err)
	suite.Require().Len(invoices, 2)
	suite.Equal("INV-007", invoices[0].ReferenceNumber)
	suite.Equal("INV-001", invoices[1].ReferenceNumber)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_DateRangeFilter() {
	ctx := context.Background()
	stored := []domain.Invoice{
		{ReferenceNumber: "INV-001", CreationDate: domain.ParseDate("2026-05-04")},
		{ReferenceNumber: "INV-003", CreationDate: domain.ParseDate("2026-06-02")},
		{ReferenceNumber: "INV-007", CreationDate: domain.ParseDate("2026-08-03")},
	}
	suite.mockInvoiceRepo.On("ListInvoices", ctx).Return(stored, nil).Once()

	params := dto.ListRecordsParams{From: "2026-06-02", To: "2026-08-03"}
	invoices, err := suite.service.ListInvoices(ctx, params)

	suite.Require().NoError(err)
	suite.Require().Len(invoices, 2)
	suite.Equal("INV-003", invoices[0].ReferenceNumber)
	suite.Equal("INV-007", invoices[1].ReferenceNumber)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
