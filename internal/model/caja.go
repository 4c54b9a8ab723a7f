package model

import "github.com/shopspring/decimal"

// Caja day state lives in two independent maps keyed by date (YYYY-MM-DD),
// mirroring the two legacy storage entries.

// AperturasCaja holds the opening float per day. Absent day = zero float.
type AperturasCaja map[string]decimal.Decimal

// CierresCaja holds the closed flag per day. Absent day = open.
// A closed day only blocks new sales; reports stay available.
type CierresCaja map[string]bool
