package models

import "strings"

type UserRole string
type ApplicationStatus string
type JobUrgency string

const (
	UserRoleSeeker   UserRole = "user"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusViewed   ApplicationStatus = "viewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	JobUrgencyUrgent    JobUrgency = "urgent"
	JobUrgencyNotUrgent JobUrgency = "not_urgent"
)

// ParseApplicationStatus нормализует входящий статус отклика.
// "reviewed" - легаси-синоним для "viewed", старые клиенты его еще шлют.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return ApplicationStatusPending, true
	case "viewed", "reviewed":
		return ApplicationStatusViewed, true
	case "accepted":
		return ApplicationStatusAccepted, true
	case "rejected":
		return ApplicationStatusRejected, true
	default:
		return "", false
	}
}

// ValidUserRole проверяет, что роль из запроса известна системе
func ValidUserRole(r string) bool {
	switch UserRole(r) {
	case UserRoleSeeker, UserRoleEmployer, UserRoleAdmin:
		return true
	default:
		return false
	}
}
