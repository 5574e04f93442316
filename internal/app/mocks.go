package app

import "hiringbooth/internal/logger"

// MockEmailProvider используется для тестов и локальной разработки.
// Письма пишутся в лог вместо отправки.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, htmlBody string) error {
	logger.Info("mock email", "to", to, "subject", subject)
	return nil
}

func (m *MockEmailProvider) SendOTP(to, code string) error {
	logger.Info("mock OTP email", "to", to, "code", code)
	return nil
}

func (m *MockEmailProvider) SendEmployerDecision(to string, approved bool, reason string) error {
	logger.Info("mock employer decision email", "to", to, "approved", approved, "reason", reason)
	return nil
}
