package eir

import (
	"fmt"
	"math/rand/v2"
)

// Config — шапка квитанции EIR.
type Config struct {
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	CompanyTaxID   string `json:"companyTaxId"`
	CompanyPhone   string `json:"companyPhone"`
	TerminalCode   string `json:"terminalCode"`
	FooterNotes    string `json:"footerNotes"`
	LogoURL        string `json:"logoUrl,omitempty"`
	EIRPrefix      string `json:"eirPrefix"`
}

func DefaultConfig() Config {
	return Config{
		CompanyName:  "ZEROHUB LOGISTICS TERMINAL",
		TerminalCode: "ZH-SA-01",
		EIRPrefix:    "EIR",
	}
}

// NewNumber — <prefix>-<шесть случайных цифр>.
func NewNumber(prefix string) string {
	if prefix == "" {
		prefix = "EIR"
	}
	return fmt.Sprintf("%s-%d", prefix, 100000+rand.IntN(900000))
}
