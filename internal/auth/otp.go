package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// OTPTTL - срок жизни кода подтверждения email
const OTPTTL = 10 * time.Minute

// OTPLength - количество цифр в коде
const OTPLength = 6

// GenerateOTP возвращает одноразовый числовой код и время его протухания.
// crypto/rand, а не math/rand: код уходит во внешний канал.
func GenerateOTP() (code string, expiresAt time.Time, err error) {
	max := big.NewInt(1)
	for i := 0; i < OTPLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate otp: %w", err)
	}

	return fmt.Sprintf("%0*d", OTPLength, n), time.Now().Add(OTPTTL), nil
}
