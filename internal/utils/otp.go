package utils

import (
	"crypto/rand"
	"math/big"
	"time"
)

const (
	OTPMin = 100000
	OTPMax = 999999

	DefaultOTPTTL = 10 * time.Minute
)

// OTPGenerator returns a fresh one-time code.
type OTPGenerator func() (int, error)

// NewOTP draws a uniform 6-digit code in [OTPMin, OTPMax].
func NewOTP() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(OTPMax-OTPMin+1))
	if err != nil {
		return 0, err
	}
	return OTPMin + int(n.Int64()), nil
}

// OTPTTL falls back to DefaultOTPTTL for a non-positive ttl.
func OTPTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultOTPTTL
	}
	return ttl
}
