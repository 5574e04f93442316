package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	AdminHandler       *AdminHandler
	UploadHandler      *UploadHandler
}
