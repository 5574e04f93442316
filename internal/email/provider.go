package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет произвольное HTML-письмо
	Send(to, subject, htmlBody string) error

	// SendOTP отправляет код подтверждения email
	SendOTP(to, code string) error

	// SendEmployerDecision уведомляет работодателя о решении администратора
	SendEmployerDecision(to string, approved bool, reason string) error
}
