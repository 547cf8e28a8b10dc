package businessservice

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// Business модель бизнеса из BusinessService
type Business struct {
	ID       int64  `json:"id"`
	OwnerID  int64  `json:"owner_id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"` // IANA, например "Europe/Moscow"; может быть пустым

	// WorkingHours отсутствует в ответе, если расписание не настроено
	WorkingHours domain.WorkingHours `json:"working_hours"`
}

// IsOwner возвращает true, если пользователь - владелец бизнеса
func (b *Business) IsOwner(userID int64) bool {
	return b.OwnerID == userID
}

// ErrorResponse модель ошибки от BusinessService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
