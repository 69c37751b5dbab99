package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAirtime() *AirtimeRequest {
	return &AirtimeRequest{
		Amount:         100,
		PhoneNumber:    "08031234567",
		Network:        "MTN",
		TransactionPin: "1234",
	}
}

func TestAirtime(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*AirtimeRequest)
		badField string
	}{
		{"valid", func(r *AirtimeRequest) {}, ""},
		{"valid international prefix", func(r *AirtimeRequest) { r.PhoneNumber = "+2348031234567" }, ""},
		{"zero amount", func(r *AirtimeRequest) { r.Amount = 0 }, "amount"},
		{"amount above cap", func(r *AirtimeRequest) { r.Amount = MaxTransactionAmount + 1 }, "amount"},
		{"short phone", func(r *AirtimeRequest) { r.PhoneNumber = "0803123" }, "phoneNumber"},
		{"missing network", func(r *AirtimeRequest) { r.Network = "" }, "network"},
		{"missing pin", func(r *AirtimeRequest) { r.TransactionPin = "" }, "transactionPin"},
		{"short pin", func(r *AirtimeRequest) { r.TransactionPin = "123" }, "transactionPin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAirtime()
			tt.mutate(req)

			v := New()
			v.Airtime(req)

			if tt.badField == "" {
				assert.True(t, v.Valid(), v.First())
			} else {
				assert.False(t, v.Valid())
				assert.Contains(t, v.Errors, tt.badField)
			}
		})
	}
}

func TestBankTransfer(t *testing.T) {
	valid := func() *TransferRequest {
		return &TransferRequest{
			Amount:        50,
			BankName:      "GTBank",
			AccountName:   "Ada Obi",
			AccountNumber: "0123456789",
			Pin:           "1234",
		}
	}

	v := New()
	v.BankTransfer(valid())
	assert.True(t, v.Valid(), v.First())

	v = New()
	req := valid()
	req.AccountNumber = "01234"
	v.BankTransfer(req)
	assert.Contains(t, v.Errors, "accountNumber")

	v = New()
	req = valid()
	req.AccountNumber = "01234567890"
	v.BankTransfer(req)
	assert.Contains(t, v.Errors, "accountNumber")
}

func TestFund(t *testing.T) {
	v := New()
	v.Fund(&FundRequest{Reference: "ref-1"})
	assert.True(t, v.Valid())

	v = New()
	v.Fund(&FundRequest{})
	assert.Contains(t, v.Errors, "reference")
}
