package transaction

import (
	"context"
	"strings"
	"testing"

	"moniepaddy/internal/models"
	"moniepaddy/internal/repositories"
	"moniepaddy/internal/services/billing"
	"moniepaddy/internal/services/payment"
	"moniepaddy/internal/services/wallet"
	"moniepaddy/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) UpdateBalance(userID uint, balance int64) error {
	args := m.Called(userID, balance)
	return args.Error(0)
}

type MockTxRepo struct {
	mock.Mock
}

func (m *MockTxRepo) Create(tx *models.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

func (m *MockTxRepo) ListByUser(userID uint) ([]models.Transaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTxRepo) FindByReference(reference string) (*models.Transaction, error) {
	args := m.Called(reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTxRepo) Search(userID uint, search, filter string) ([]models.Transaction, error) {
	args := m.Called(userID, search, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) CalculateBalance(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWallet) RefreshBalance(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWallet) VerifyPIN(user *models.User, submitted string) error {
	args := m.Called(user, submitted)
	return args.Error(0)
}

func (m *MockWallet) LockUser(userID uint)   { m.Called(userID) }
func (m *MockWallet) UnlockUser(userID uint) { m.Called(userID) }

type MockBilling struct {
	mock.Mock
}

func (m *MockBilling) Operators(ctx context.Context) ([]models.NetworkItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NetworkItem), args.Error(1)
}

func (m *MockBilling) DataPlans(ctx context.Context, network string) ([]models.DataPlan, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DataPlan), args.Error(1)
}

func (m *MockBilling) FetchDataPlan(ctx context.Context, network, planID string) (*billing.ResolvedPlan, error) {
	args := m.Called(ctx, network, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.ResolvedPlan), args.Error(1)
}

func (m *MockBilling) BuyAirtime(ctx context.Context, amountMinor int64, phoneNumber, network string) (*billing.PurchaseResult, error) {
	args := m.Called(ctx, amountMinor, phoneNumber, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PurchaseResult), args.Error(1)
}

func (m *MockBilling) BuyData(ctx context.Context, planID, phoneNumber, network string) (*billing.PurchaseResult, error) {
	args := m.Called(ctx, planID, phoneNumber, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PurchaseResult), args.Error(1)
}

type MockPayment struct {
	mock.Mock
}

func (m *MockPayment) VerifyTransaction(ctx context.Context, reference string) (*payment.VerifyResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.VerifyResult), args.Error(1)
}

type fixture struct {
	users   *MockUserRepo
	ledger  *MockTxRepo
	wallet  *MockWallet
	billing *MockBilling
	payment *MockPayment
	service Service
}

func newFixture(cfg Config) *fixture {
	f := &fixture{
		users:   new(MockUserRepo),
		ledger:  new(MockTxRepo),
		wallet:  new(MockWallet),
		billing: new(MockBilling),
		payment: new(MockPayment),
	}
	f.service = NewService(f.users, f.ledger, f.wallet, f.billing, f.payment, cfg)
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	f.users.AssertExpectations(t)
	f.ledger.AssertExpectations(t)
	f.wallet.AssertExpectations(t)
	f.billing.AssertExpectations(t)
	f.payment.AssertExpectations(t)
}

func testUser(id uint) *models.User {
	user := &models.User{Email: "ada@example.com", TransactionPin: "$2a$04$hash"}
	user.ID = id
	return user
}

func airtimeRequest() *validation.AirtimeRequest {
	return &validation.AirtimeRequest{
		Amount:         1,
		PhoneNumber:    "08031234567",
		Network:        "MTN",
		TransactionPin: "1234",
	}
}

func TestBuyAirtime_InsufficientFunds(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.wallet.On("LockUser", uint(1)).Return()
	f.wallet.On("UnlockUser", uint(1)).Return()
	// Zero balance against a 100 minor-unit purchase.
	f.wallet.On("RefreshBalance", mock.Anything, user).Return(int64(0), nil)
	f.wallet.On("VerifyPIN", user, "1234").Return(nil)

	tx, err := f.service.BuyAirtime(context.Background(), 1, airtimeRequest())

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Nil(t, tx)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything)
	f.billing.AssertNotCalled(t, "BuyAirtime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestBuyAirtime_MissingStoredPinFailsClosed(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)
	user.TransactionPin = ""

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.wallet.On("LockUser", uint(1)).Return()
	f.wallet.On("UnlockUser", uint(1)).Return()
	f.wallet.On("RefreshBalance", mock.Anything, user).Return(int64(100000), nil)
	f.wallet.On("VerifyPIN", user, "1234").Return(wallet.ErrPinNotSet)

	tx, err := f.service.BuyAirtime(context.Background(), 1, airtimeRequest())

	assert.ErrorIs(t, err, wallet.ErrPinNotSet)
	assert.Nil(t, tx)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything)
	f.assertExpectations(t)
}

func TestBuyAirtime_Success(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.wallet.On("LockUser", uint(1)).Return()
	f.wallet.On("UnlockUser", uint(1)).Return()
	f.wallet.On("RefreshBalance", mock.Anything, user).Return(int64(5000), nil)
	f.wallet.On("VerifyPIN", user, "1234").Return(nil)
	f.billing.On("BuyAirtime", mock.Anything, int64(100), "08031234567", "MTN").
		Return(&billing.PurchaseResult{Status: "successful", Reference: "ref-1"}, nil)
	f.ledger.On("Create", mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.UserID == 1 &&
			tx.Amount == 100 &&
			!tx.Credit &&
			tx.Type == models.TransactionTypeAirtime &&
			tx.Reference == "ref-1" &&
			tx.Status == "successful"
	})).Return(nil)
	f.users.On("UpdateBalance", uint(1), int64(4900)).Return(nil)

	tx, err := f.service.BuyAirtime(context.Background(), 1, airtimeRequest())

	assert.NoError(t, err)
	assert.NotNil(t, tx)
	assert.Equal(t, int64(100), tx.Amount)
	f.assertExpectations(t)
}

func TestBuyAirtime_ProviderNotSuccessful(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.wallet.On("LockUser", uint(1)).Return()
	f.wallet.On("UnlockUser", uint(1)).Return()
	f.wallet.On("RefreshBalance", mock.Anything, user).Return(int64(5000), nil)
	f.wallet.On("VerifyPIN", user, "1234").Return(nil)
	f.billing.On("BuyAirtime", mock.Anything, int64(100), "08031234567", "MTN").
		Return(&billing.PurchaseResult{Status: "pending", Reference: "ref-2"}, nil)

	tx, err := f.service.BuyAirtime(context.Background(), 1, airtimeRequest())

	assert.ErrorIs(t, err, billing.ErrPurchaseFailed)
	assert.Nil(t, tx)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything)
	f.assertExpectations(t)
}

func TestBuyAirtime_DryRunSkipsProvider(t *testing.T) {
	f := newFixture(Config{DryRun: true})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.wallet.On("LockUser", uint(1)).Return()
	f.wallet.On("UnlockUser", uint(1)).Return()
	f.wallet.On("RefreshBalance", mock.Anything, user).Return(int64(5000), nil)
	f.wallet.On("VerifyPIN", user, "1234").Return(nil)
	f.ledger.On("Create", mock.MatchedBy(func(tx *models.Transaction) bool {
		return strings.HasPrefix(tx.Reference, "dry-") && tx.Amount == 100 && !tx.Credit
	})).Return(nil)
	f.users.On("UpdateBalance", uint(1), int64(4900)).Return(nil)

	tx, err := f.service.BuyAirtime(context.Background(), 1, airtimeRequest())

	assert.NoError(t, err)
	assert.NotNil(t, tx)
	f.billing.AssertNotCalled(t, "BuyAirtime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestBuyAirtime_RejectsBadInput(t *testing.T) {
	f := newFixture(Config{})

	req := airtimeRequest()
	req.Amount = 0

	tx, err := f.service.BuyAirtime(context.Background(), 1, req)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Nil(t, tx)
	f.users.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestBuyData_UnresolvedPlanAbortsBeforeBalanceAndPin(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.billing.On("FetchDataPlan", mock.Anything, "MTN", "plan-404").
		Return(nil, billing.ErrPlanNotFound)

	req := &validation.DataRequest{
		DataPlanID:     "plan-404",
		PhoneNumber:    "08031234567",
		Network:        "MTN",
		TransactionPin: "1234",
	}
	tx, err := f.service.BuyData(context.Background(), 1, req)

	assert.ErrorIs(t, err, billing.ErrPlanNotFound)
	assert.Nil(t, tx)
	// No balance or pin work happened.
	f.wallet.AssertNotCalled(t, "RefreshBalance", mock.Anything, mock.Anything)
	f.wallet.AssertNotCalled(t, "VerifyPIN", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestBuyData_UsesCatalogFee(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.billing.On("FetchDataPlan", mock.Anything, "MTN", "plan-1").
		Return(&billing.ResolvedPlan{ID: "plan-1", FeeMajor: 500}, nil)
	f.wallet.On("LockUser", uint(1)).Return()
	f.wallet.On("UnlockUser", uint(1)).Return()
	f.wallet.On("RefreshBalance", mock.Anything, user).Return(int64(100000), nil)
	f.wallet.On("VerifyPIN", user, "1234").Return(nil)
	f.billing.On("BuyData", mock.Anything, "plan-1", "08031234567", "MTN").
		Return(&billing.PurchaseResult{Status: "successful", Reference: "ref-3"}, nil)
	f.ledger.On("Create", mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Type == models.TransactionTypeData &&
			tx.Amount == 50000 && // 500 major from the catalog, never the client
			tx.DataPlan == "plan-1"
	})).Return(nil)
	f.users.On("UpdateBalance", uint(1), int64(50000)).Return(nil)

	req := &validation.DataRequest{
		DataPlanID:     "plan-1",
		PhoneNumber:    "08031234567",
		Network:        "MTN",
		TransactionPin: "1234",
	}
	tx, err := f.service.BuyData(context.Background(), 1, req)

	assert.NoError(t, err)
	assert.Equal(t, int64(50000), tx.Amount)
	f.assertExpectations(t)
}

func transferRequest() *validation.TransferRequest {
	return &validation.TransferRequest{
		Amount:        50,
		BankName:      "GTBank",
		AccountName:   "Ada Obi",
		AccountNumber: "0123456789",
		Note:          "rent",
		Pin:           "1234",
	}
}

func TestBankTransfer_MissingStoredPinFailsClosed(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)
	user.TransactionPin = ""

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.wallet.On("VerifyPIN", user, "1234").Return(wallet.ErrPinNotSet)

	tx, err := f.service.BankTransfer(context.Background(), 1, transferRequest())

	assert.ErrorIs(t, err, wallet.ErrPinNotSet)
	assert.Nil(t, tx)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything)
	f.wallet.AssertNotCalled(t, "RefreshBalance", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestBankTransfer_InsufficientFundsConflict(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.wallet.On("VerifyPIN", user, "1234").Return(nil)
	f.wallet.On("LockUser", uint(1)).Return()
	f.wallet.On("UnlockUser", uint(1)).Return()
	f.wallet.On("RefreshBalance", mock.Anything, user).Return(int64(4999), nil)

	tx, err := f.service.BankTransfer(context.Background(), 1, transferRequest())

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Nil(t, tx)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything)
	f.assertExpectations(t)
}

func TestBankTransfer_RecordsDebitWithoutExternalCall(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.wallet.On("VerifyPIN", user, "1234").Return(nil)
	f.wallet.On("LockUser", uint(1)).Return()
	f.wallet.On("UnlockUser", uint(1)).Return()
	f.wallet.On("RefreshBalance", mock.Anything, user).Return(int64(10000), nil)
	f.ledger.On("Create", mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Type == models.TransactionTypeTransfer &&
			tx.Amount == 5000 &&
			!tx.Credit &&
			tx.BankName == "GTBank" &&
			tx.AccountNumber == "0123456789"
	})).Return(nil)
	f.users.On("UpdateBalance", uint(1), int64(5000)).Return(nil)

	tx, err := f.service.BankTransfer(context.Background(), 1, transferRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(5000), tx.Amount)
	f.assertExpectations(t)
}

func TestFundWallet_DuplicateReferenceConflict(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.ledger.On("FindByReference", "ref-dup").
		Return(&models.Transaction{Reference: "ref-dup"}, nil)

	amount, err := f.service.FundWallet(context.Background(), 1, &validation.FundRequest{Reference: "ref-dup"})

	assert.ErrorIs(t, err, ErrDuplicateReference)
	assert.Zero(t, amount)
	f.payment.AssertNotCalled(t, "VerifyTransaction", mock.Anything, mock.Anything)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything)
	f.assertExpectations(t)
}

func TestFundWallet_CreditsProviderAmountVerbatim(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.ledger.On("FindByReference", "ref-new").
		Return(nil, repositories.ErrTransactionNotFound)
	f.payment.On("VerifyTransaction", mock.Anything, "ref-new").
		Return(&payment.VerifyResult{Amount: 250000, Status: "success"}, nil)
	f.ledger.On("Create", mock.MatchedBy(func(tx *models.Transaction) bool {
		// Minor units straight from the provider, no conversion.
		return tx.Credit &&
			tx.Amount == 250000 &&
			tx.Type == models.TransactionTypeFundWallet &&
			tx.Reference == "ref-new"
	})).Return(nil)

	amount, err := f.service.FundWallet(context.Background(), 1, &validation.FundRequest{Reference: "ref-new"})

	assert.NoError(t, err)
	assert.Equal(t, int64(250000), amount)
	f.assertExpectations(t)
}

func TestFundWallet_VerifyFailureWritesNothing(t *testing.T) {
	f := newFixture(Config{})
	user := testUser(1)

	f.users.On("GetByID", uint(1)).Return(user, nil)
	f.ledger.On("FindByReference", "ref-bad").
		Return(nil, repositories.ErrTransactionNotFound)
	f.payment.On("VerifyTransaction", mock.Anything, "ref-bad").
		Return(nil, payment.ErrVerificationFailed)

	amount, err := f.service.FundWallet(context.Background(), 1, &validation.FundRequest{Reference: "ref-bad"})

	assert.ErrorIs(t, err, payment.ErrVerificationFailed)
	assert.Zero(t, amount)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything)
	f.assertExpectations(t)
}

func TestHistory_FilterNeverWidensScope(t *testing.T) {
	f := newFixture(Config{})

	// "all" used to clear the owner constraint upstream; the query stays
	// bound to the caller here.
	f.ledger.On("Search", uint(1), "", "all").Return([]models.Transaction{}, nil)

	txs, err := f.service.History(context.Background(), 1, "", "all")

	assert.NoError(t, err)
	assert.Empty(t, txs)
	f.assertExpectations(t)
}
