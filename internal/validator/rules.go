package validator

import (
	"log"

	"hiringbooth/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации
// в переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации - это ошибка времени запуска приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Правила, основанные на statuses.go
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-urgency", validateUrgency)
	mustRegister("is-employment-type", validateEmploymentType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения проверяет 'required'
	}
	// Админа нельзя получить через регистрацию
	return value == string(models.UserRoleSeeker) || value == string(models.UserRoleEmployer)
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.ParseApplicationStatus(value)
	return ok
}

func validateUrgency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == string(models.JobUrgencyUrgent) || value == string(models.JobUrgencyNotUrgent)
}

func validateEmploymentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "full_time", "part_time", "contract", "internship", "freelance":
		return true
	default:
		return false
	}
}
