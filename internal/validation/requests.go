package validation

// AirtimeRequest is the wire contract for an airtime purchase. Amount is in
// major units.
type AirtimeRequest struct {
	Amount         int64  `json:"amount"`
	PhoneNumber    string `json:"phoneNumber"`
	Network        string `json:"network"`
	TransactionPin string `json:"transactionPin"`
}

// DataRequest is the wire contract for a data bundle purchase. The amount is
// resolved from the plan catalog, never taken from the client.
type DataRequest struct {
	DataPlanID     string `json:"dataPlanId"`
	PhoneNumber    string `json:"phoneNumber"`
	Network        string `json:"network"`
	TransactionPin string `json:"transactionPin"`
}

// TransferRequest is the wire contract for a bank transfer. Amount is in
// major units.
type TransferRequest struct {
	Amount        int64  `json:"amount"`
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Note          string `json:"note"`
	Pin           string `json:"pin"`
}

// FundRequest is the wire contract for crediting the wallet from a payment
// provider reference.
type FundRequest struct {
	Reference string `json:"reference"`
}

// Airtime validates an airtime purchase request.
func (v *Validator) Airtime(req *AirtimeRequest) {
	v.Range("amount", req.Amount, MinTransactionAmount, MaxTransactionAmount)
	v.Phone("phoneNumber", req.PhoneNumber)
	v.Required("network", req.Network)
	v.Pin("transactionPin", req.TransactionPin)
}

// Data validates a data purchase request.
func (v *Validator) Data(req *DataRequest) {
	v.Required("dataPlanId", req.DataPlanID)
	v.Phone("phoneNumber", req.PhoneNumber)
	v.Required("network", req.Network)
	v.Pin("transactionPin", req.TransactionPin)
}

// BankTransfer validates a transfer request.
func (v *Validator) BankTransfer(req *TransferRequest) {
	v.Range("amount", req.Amount, MinTransactionAmount, MaxTransactionAmount)
	v.Required("bankName", req.BankName)
	v.Required("accountName", req.AccountName)
	v.AccountNumber("accountNumber", req.AccountNumber)
	v.MaxLength("note", req.Note, MaxNoteLength)
	v.Pin("pin", req.Pin)
}

// Fund validates a wallet funding request.
func (v *Validator) Fund(req *FundRequest) {
	v.Required("reference", req.Reference)
	v.MaxLength("reference", req.Reference, MaxReferenceLength)
}
