package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/observability/metrics"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrDepositNotFound                = errors.New("deposit not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotApproved               = errors.New("quote not approved")
	ErrInvalidDepositAmount           = errors.New("invalid deposit amount")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDepositUseCase encapsulates the "collect deposit on approval" behavior.
//
// The shop takes a percentage of the quote total up front once the guest
// approves; the remainder is settled at pickup outside this service.

type IDepositUseCase interface {
	CollectDeposit(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Deposit, error)
}

type DepositUseCase struct {
	repo      interfaces.IDepositRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	metrics   *metrics.Registry

	depositPercent decimal.Decimal
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, reg *metrics.Registry) *DepositUseCase {
	return &DepositUseCase{
		repo:           repo,
		quoteRepo:      quoteRepo,
		gateway:        gateway,
		metrics:        reg,
		depositPercent: envDecimalDefault("DEPOSIT_PERCENT", "0.5"),
	}
}

func (u *DepositUseCase) CollectDeposit(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.Deposit, error) {
	log.Printf("[deposit][usecase] collect start raw_quote_id=%q payload_len=%d", quoteID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		log.Printf("[deposit][usecase] invalid quote_id (empty)")
		return entities.Deposit{}, ErrInvalidQuoteID
	}
	if len(mpPayload) == 0 {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][usecase] invalid payload (empty) quote_id=%s", quoteID)
			return entities.Deposit{}, ErrInvalidMPPayload
		}
	}
	if !json.Valid(mpPayload) {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][usecase] invalid payload (not-json) quote_id=%s", quoteID)
			return entities.Deposit{}, ErrInvalidMPPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[deposit][usecase] gateway not configured quote_id=%s", quoteID)
		return entities.Deposit{}, errors.New("payment gateway not configured")
	}
	if u.quoteRepo == nil {
		log.Printf("[deposit][usecase] quote repository not configured quote_id=%s", quoteID)
		return entities.Deposit{}, errors.New("quote repository not configured")
	}

	log.Printf("[deposit][usecase] loading quote quote_id=%s", quoteID)
	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Printf("[deposit][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		return entities.Deposit{}, err
	}
	if q.ID == "" {
		log.Printf("[deposit][usecase] quote not found quote_id=%s", quoteID)
		return entities.Deposit{}, ErrQuoteNotFound
	}
	if !mockMode && q.Status != entities.QuoteStatusApproved {
		log.Printf("[deposit][usecase] quote not approved quote_id=%s status=%s", quoteID, q.Status)
		return entities.Deposit{}, ErrQuoteNotApproved
	}

	amount := q.Total.Mul(u.depositPercent).Round(2)
	if !amount.IsPositive() {
		log.Printf("[deposit][usecase] non-positive deposit quote_id=%s total=%s", quoteID, q.Total)
		return entities.Deposit{}, ErrInvalidDepositAmount
	}
	log.Printf("[deposit][usecase] quote loaded quote_id=%s status=%s total=%s deposit=%s", quoteID, q.Status, q.Total, amount)

	// Ensure basic linkage with the quote when the caller didn't provide it.
	// Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[deposit][usecase] missing payment_method_id quote_id=%s", quoteID)
			return entities.Deposit{}, ErrInvalidMPPayload
		}
		if !mockMode {
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[deposit][usecase] missing/invalid payer quote_id=%s", quoteID)
			return entities.Deposit{}, ErrInvalidMPPayload
		}

		log.Printf("[deposit][usecase] enriching payload quote_id=%s", quoteID)
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quoteID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Deposit for quote %s", quoteID)
		}

		// The source of truth for the amount is the quote total in DB.
		reqMap["transaction_amount"] = amount.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
			log.Printf("[deposit][usecase] payload enriched quote_id=%s payload_len=%d", quoteID, len(mpPayload))
		}
	} else {
		log.Printf("[deposit][usecase] payload unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[deposit][usecase] mock mode enabled; skipping external payment gateway quote_id=%s", quoteID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(mpPayload) > 0 && json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = quoteID
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = amount.InexactFloat64()
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.Deposit{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[deposit][usecase] calling payment gateway quote_id=%s", quoteID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[deposit][usecase] payment gateway failed quote_id=%s err=%v", quoteID, err)
			if isGatewayCustomerNotFound(err) {
				return entities.Deposit{}, ErrPaymentGatewayCustomerNotFound
			}
			if isGatewayInvalidUsers(err) {
				return entities.Deposit{}, ErrPaymentGatewayInvalidUsers
			}
			if isGatewayUnauthorized(err) {
				return entities.Deposit{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Deposit{}, ErrPaymentGatewayBadRequest
			}
			return entities.Deposit{}, err
		}
	}
	log.Printf("[deposit][usecase] payment gateway success quote_id=%s provider_payment_id=%s provider_status=%s", quoteID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	d := entities.Deposit{
		ID:           providerPaymentID,
		QuoteID:      quoteID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       entities.DepositStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[deposit][usecase] deposit repository create failed quote_id=%s deposit_id=%s err=%v", quoteID, d.ID, err)
		return entities.Deposit{}, err
	}
	u.metrics.IncDepositsCollected()
	log.Printf("[deposit][usecase] collect success quote_id=%s deposit_id=%s status=%s amount=%s", quoteID, created.ID, created.Status, created.Amount)
	return created, nil
}

func (u *DepositUseCase) GetByID(ctx context.Context, id string) (entities.Deposit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deposit{}, errors.New("invalid deposit id")
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deposit{}, err
	}
	if d.ID == "" {
		return entities.Deposit{}, ErrDepositNotFound
	}
	return d, nil
}

func (u *DepositUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Deposit, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
