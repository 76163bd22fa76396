package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountLabel_KnownAccounts(t *testing.T) {
	tests := []struct {
		account string
		want    string
	}{
		{"0xf00EbF44706A84d73698D51390a6801215fF338c", "Supplier#1"},
		{"0x2074b4e9bE42c7724C936c16795C42c04e83d7ae", "Supplier#2"},
		{"0x3421668462324bFB48EA07D0B12243091CD09759", "Company"},
		{"0xf5D0a9A8cCC008Bc72c6e708F5A7871d094B7E11", "Customer"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, AccountLabel(tt.account))
		})
	}
}

func TestAccountLabel_UnknownAccountVerbatim(t *testing.T) {
	addr := "0x1111111111111111111111111111111111111111"
	assert.Equal(t, addr, AccountLabel(addr))
}

func TestAccountLabel_CaseSensitive(t *testing.T) {
	lower := strings.ToLower("0xf00EbF44706A84d73698D51390a6801215fF338c")
	assert.Equal(t, lower, AccountLabel(lower))
}

func TestAccountLabel_Empty(t *testing.T) {
	assert.Equal(t, "", AccountLabel(""))
}
