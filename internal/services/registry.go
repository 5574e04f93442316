package services

// ServiceContainer собирает все сервисы приложения в одном месте
type ServiceContainer struct {
	Auth        AuthService
	Profile     ProfileService
	Job         JobService
	Application ApplicationService
	Admin       AdminService
	Upload      UploadService
}
