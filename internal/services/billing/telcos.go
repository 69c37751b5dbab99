package billing

import (
	"strings"

	"moniepaddy/internal/models"
)

// Telcos maps the networks we sell for to their BlocHQ operator ids.
var Telcos = []models.NetworkItem{
	{Name: "MTN", ID: "61efabbe2004aae9e6a3a1a5"},
	{Name: "Airtel", ID: "61efabbe2004aae9e6a3a1a7"},
	{Name: "Glo", ID: "61efabbe2004aae9e6a3a1a9"},
	{Name: "9mobile", ID: "61efabbe2004aae9e6a3a1ab"},
}

// OperatorID resolves a network name to its operator id, case-insensitively.
func OperatorID(network string) (string, bool) {
	for _, telco := range Telcos {
		if strings.EqualFold(telco.Name, network) {
			return telco.ID, true
		}
	}
	return "", false
}
