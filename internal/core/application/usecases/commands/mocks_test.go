package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/invoicereturn"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

type MockPickingSessionRepository struct{ mock.Mock }

func (m *MockPickingSessionRepository) Add(ctx context.Context, s *session.PickingSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockPickingSessionRepository) Update(ctx context.Context, s *session.PickingSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockPickingSessionRepository) FindByInvoiceID(ctx context.Context, invoiceID kernel.UUID) (*session.PickingSession, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.PickingSession), args.Error(1)
}

type MockPackingSessionRepository struct{ mock.Mock }

func (m *MockPackingSessionRepository) Add(ctx context.Context, s *session.PackingSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockPackingSessionRepository) Update(ctx context.Context, s *session.PackingSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockPackingSessionRepository) FindByInvoiceID(ctx context.Context, invoiceID kernel.UUID) (*session.PackingSession, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.PackingSession), args.Error(1)
}
func (m *MockPackingSessionRepository) SaveBoxes(ctx context.Context, sessionID kernel.UUID, boxes []*packing.Box) error {
	args := m.Called(ctx, sessionID, boxes)
	return args.Error(0)
}
func (m *MockPackingSessionRepository) GetBoxes(ctx context.Context, sessionID kernel.UUID) ([]*packing.Box, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*packing.Box), args.Error(1)
}

type MockDeliverySessionRepository struct{ mock.Mock }

func (m *MockDeliverySessionRepository) Add(ctx context.Context, s *session.DeliverySession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockDeliverySessionRepository) Update(ctx context.Context, s *session.DeliverySession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockDeliverySessionRepository) FindByInvoiceID(ctx context.Context, invoiceID kernel.UUID) (*session.DeliverySession, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.DeliverySession), args.Error(1)
}

type MockInvoiceReturnRepository struct{ mock.Mock }

func (m *MockInvoiceReturnRepository) Add(ctx context.Context, r *invoicereturn.InvoiceReturn) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockInvoiceReturnRepository) Update(ctx context.Context, r *invoicereturn.InvoiceReturn) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockInvoiceReturnRepository) FindOpenByInvoiceID(ctx context.Context, invoiceID kernel.UUID) (*invoicereturn.InvoiceReturn, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicereturn.InvoiceReturn), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) ResolveUser(ctx context.Context, email string) (*ports.DirectoryUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.DirectoryUser), args.Error(1)
}
func (m *MockUserDirectory) HasMenuAccess(ctx context.Context, userID kernel.UUID, menuCode string) (bool, error) {
	args := m.Called(ctx, userID, menuCode)
	return args.Bool(0), args.Error(1)
}

type MockPickingUoW struct{ mock.Mock }

func (m *MockPickingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPickingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPickingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPickingUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}
func (m *MockPickingUoW) PickingSessionRepository() ports.PickingSessionRepository {
	args := m.Called()
	return args.Get(0).(ports.PickingSessionRepository)
}

type MockPickingUoWFactory struct{ mock.Mock }

func (m *MockPickingUoWFactory) Create() commands.PickingUoW {
	args := m.Called()
	return args.Get(0).(commands.PickingUoW)
}

type MockPackingUoW struct{ mock.Mock }

func (m *MockPackingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackingUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}
func (m *MockPackingUoW) PackingSessionRepository() ports.PackingSessionRepository {
	args := m.Called()
	return args.Get(0).(ports.PackingSessionRepository)
}

type MockPackingUoWFactory struct{ mock.Mock }

func (m *MockPackingUoWFactory) Create() commands.PackingUoW {
	args := m.Called()
	return args.Get(0).(commands.PackingUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}
func (m *MockDeliveryUoW) DeliverySessionRepository() ports.DeliverySessionRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliverySessionRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockReviewUoW struct{ mock.Mock }

func (m *MockReviewUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}
func (m *MockReviewUoW) PickingSessionRepository() ports.PickingSessionRepository {
	args := m.Called()
	return args.Get(0).(ports.PickingSessionRepository)
}
func (m *MockReviewUoW) PackingSessionRepository() ports.PackingSessionRepository {
	args := m.Called()
	return args.Get(0).(ports.PackingSessionRepository)
}
func (m *MockReviewUoW) DeliverySessionRepository() ports.DeliverySessionRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliverySessionRepository)
}
func (m *MockReviewUoW) InvoiceReturnRepository() ports.InvoiceReturnRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceReturnRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

type MockInvoiceUoW struct{ mock.Mock }

func (m *MockInvoiceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInvoiceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInvoiceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInvoiceUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

// fixtures

func fixtureItem(t *testing.T, name, code, barcode string, qty int) *invoice.InvoiceItem {
	t.Helper()
	item, err := invoice.NewInvoiceItem(kernel.NewUUID(), name, code, barcode, qty,
		decimal.NewFromInt(50), "B-100", nil, "A1", "Medix", "10x10")
	require.NoError(t, err)
	return item
}

func fixtureInvoice(t *testing.T, number string, status invoice.Status, items ...*invoice.InvoiceItem) *invoice.Invoice {
	t.Helper()
	if len(items) == 0 {
		items = []*invoice.InvoiceItem{fixtureItem(t, "Paracetamol 500mg", "PARA-500", "890100001", 10)}
	}
	customer, err := invoice.NewCustomer("CUST-001", "Lanka Traders")
	require.NoError(t, err)
	inv, err := invoice.RestoreInvoice(kernel.NewUUID(), number, time.Now(), customer,
		"S. Perera", invoice.PriorityMedium, decimal.NewFromInt(500), "",
		status, invoice.BillingNormal, "import", time.Now(), items)
	require.NoError(t, err)
	return inv
}

func fixtureReInvoicedInvoice(t *testing.T, number string, status invoice.Status, items ...*invoice.InvoiceItem) *invoice.Invoice {
	t.Helper()
	if len(items) == 0 {
		items = []*invoice.InvoiceItem{fixtureItem(t, "Paracetamol 500mg", "PARA-500", "890100001", 10)}
	}
	customer, err := invoice.NewCustomer("CUST-001", "Lanka Traders")
	require.NoError(t, err)
	inv, err := invoice.RestoreInvoice(kernel.NewUUID(), number, time.Now(), customer,
		"S. Perera", invoice.PriorityMedium, decimal.NewFromInt(500), "",
		status, invoice.BillingReInvoiced, "import", time.Now(), items)
	require.NoError(t, err)
	return inv
}

func fixtureDirectoryUser(email string) *ports.DirectoryUser {
	return &ports.DirectoryUser{
		ID:     kernel.NewUUID(),
		Name:   "Arun Kumar",
		Email:  email,
		Active: true,
	}
}

func fixtureOperator(t *testing.T, email string) session.Operator {
	t.Helper()
	op, err := session.NewOperator(kernel.NewUUID(), "Arun Kumar", email)
	require.NoError(t, err)
	return op
}
