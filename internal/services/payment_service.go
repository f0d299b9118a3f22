package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/payOSHQ/payos-lib-golang"

	"tobugo/internal/models/db_models"
	"tobugo/internal/models/request_models"
	"tobugo/internal/models/response_models"
	"tobugo/internal/repositories"
	"tobugo/pkg/utils"
)

// exportPriceCents is the flat price of unlocking PDF export for one trip,
// in USD cents.
const exportPriceCents = 499

type PayOSConfig struct {
	ClientID    string
	ApiKey      string
	ChecksumKey string
	Provider    string
}

type PaymentServiceInterface interface {
	CreateCheckout(ctx context.Context, userID string, request request_models.CreateCheckoutRequest) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(ctx context.Context, body payos.WebhookType) error
	ListTransactions(ctx context.Context, userID string, limit int) ([]db_models.Transaction, error)
}

type PaymentService struct {
	cfg             PayOSConfig
	transactionRepo repositories.TransactionRepository
	tripRepo        repositories.TripRepository
	accountRepo     repositories.AccountRepository
	mail            MailServiceInterface
}

func NewPaymentService(
	cfg PayOSConfig,
	transactionRepo repositories.TransactionRepository,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
	mail MailServiceInterface,
) PaymentServiceInterface {
	return &PaymentService{
		cfg:             cfg,
		transactionRepo: transactionRepo,
		tripRepo:        tripRepo,
		accountRepo:     accountRepo,
		mail:            mail,
	}
}

// CreateCheckout opens a payment link for unlocking PDF export of one trip.
// A pending transaction is written first so the webhook always finds a local
// record to settle.
func (p *PaymentService) CreateCheckout(ctx context.Context, userID string, request request_models.CreateCheckoutRequest) (*response_models.CreateCheckoutResponse, error) {
	trip, err := p.tripRepo.FindByID(ctx, request.TripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID.String() != userID {
		return nil, utils.ErrForbidden
	}

	paid, err := p.transactionRepo.HasPaidForTrip(ctx, userID, request.TripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if paid {
		return nil, utils.ErrInvalidInput
	}

	// payOS wants an int64 order code; unix seconds plus a random suffix
	// keeps it unique enough within 13 digits.
	orderCode := time.Now().Unix()%1_000_000_000*10_000 + int64(rand.Intn(10_000))

	txn := &db_models.Transaction{
		UserID:        trip.UserID,
		TripID:        trip.ID,
		Amount:        exportPriceCents,
		Status:        db_models.TransactionStatusPending,
		Provider:      p.cfg.Provider,
		ProviderTxnID: fmt.Sprintf("payos:%d", orderCode),
	}
	if err := p.transactionRepo.Insert(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    exportPriceCents,
		Items: []payos.Item{{
			Name:     fmt.Sprintf("PDF export: %s", trip.Title),
			Price:    exportPriceCents,
			Quantity: 1,
		}},
		Description: fmt.Sprintf("Itinerary export for trip %s", trip.ID),
		CancelUrl:   request.CancelURL,
		ReturnUrl:   request.ReturnURL,
	}

	link, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = p.transactionRepo.MarkFailed(ctx, txn.ProviderTxnID, err.Error())
		return nil, fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:  orderCode,
		Amount:     exportPriceCents,
		PaymentURL: link.CheckoutUrl,
		Provider:   p.cfg.Provider,
	}, nil
}

// HandleWebhook settles the matching pending transaction. Replays are
// harmless: an already-paid transaction is acknowledged without side effects.
func (p *PaymentService) HandleWebhook(ctx context.Context, body payos.WebhookType) error {
	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	data, err := payos.VerifyPaymentWebhookData(body)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrPaymentProvider, err)
	}

	providerTxnID := fmt.Sprintf("payos:%d", data.OrderCode)

	receipt, _ := json.Marshal(data)
	txn, err := p.transactionRepo.MarkPaid(ctx, providerTxnID, receipt)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if txn == nil {
		// Unknown order: acknowledge to stop provider retries, log for review.
		log.Printf("webhook: no transaction for order %d", data.OrderCode)
		return nil
	}

	p.sendReceipt(ctx, txn)
	return nil
}

func (p *PaymentService) ListTransactions(ctx context.Context, userID string, limit int) ([]db_models.Transaction, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	txns, err := p.transactionRepo.FindByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}

func (p *PaymentService) sendReceipt(ctx context.Context, txn *db_models.Transaction) {
	account, err := p.accountRepo.FindByID(ctx, txn.UserID.String())
	if err != nil || account == nil {
		return
	}
	trip, err := p.tripRepo.FindByID(ctx, txn.TripID.String())
	if err != nil || trip == nil {
		return
	}
	if err := p.mail.SendReceiptMail(account.Email, trip.Title, txn.Amount); err != nil {
		log.Printf("receipt mail failed for txn %s: %v", txn.ID, err)
	}
}
