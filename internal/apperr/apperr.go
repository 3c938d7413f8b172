// File: internal/apperr/apperr.go
package apperr

import "net/http"

// Message 錯誤訊息（英文與烏克蘭文雙語）
type Message struct {
	EN string `json:"en" example:"This token is invalid."`
	UK string `json:"uk" example:"Цей токен недійсний."`
}

// Error 領域錯誤，攜帶錯誤代碼、HTTP 狀態碼與雙語訊息
type Error struct {
	Code    string
	Status  int
	Message Message
}

// Error 實作 error 介面
func (e *Error) Error() string {
	return e.Code + ": " + e.Message.EN
}

var (
	ErrInvalidToken = &Error{
		Code:   "invalid_token",
		Status: http.StatusUnauthorized,
		Message: Message{
			EN: "This token is invalid.",
			UK: "Цей токен недійсний.",
		},
	}

	ErrExpiredToken = &Error{
		Code:   "expired_token",
		Status: http.StatusUnauthorized,
		Message: Message{
			EN: "This token is expired.",
			UK: "Термін дії цього токена закінчився.",
		},
	}

	ErrNonExistentUser = &Error{
		Code:   "non_existent_user",
		Status: http.StatusNotFound,
		Message: Message{
			EN: "This user does not exist.",
			UK: "Користувача не існує.",
		},
	}

	ErrInvalidCredentials = &Error{
		Code:   "invalid_credentials",
		Status: http.StatusBadRequest,
		Message: Message{
			EN: "Invalid email or password.",
			UK: "Неправильна електронна пошта або пароль.",
		},
	}

	ErrCredentialsAlreadyTaken = &Error{
		Code:   "credentials_already_taken",
		Status: http.StatusBadRequest,
		Message: Message{
			EN: "This email is already in use.",
			UK: "Ця електронна пошта вже використовується.",
		},
	}

	ErrInvalidAdminPassword = &Error{
		Code:   "invalid_admin_password",
		Status: http.StatusForbidden,
		Message: Message{
			EN: "Provided admin password is invalid.",
			UK: "Наданий пароль адміністратора недійсний.",
		},
	}

	ErrUnverifiedEmail = &Error{
		Code:   "unverified_email",
		Status: http.StatusForbidden,
		Message: Message{
			EN: "Please, verify your email to proceed further.",
			UK: "Будь ласка, підтвердіть свою електронну пошту, щоб продовжити.",
		},
	}

	ErrAccessDenied = &Error{
		Code:   "access_denied",
		Status: http.StatusForbidden,
		Message: Message{
			EN: "Access denied.",
			UK: "Доступ заборонено.",
		},
	}

	ErrInsufficientRights = &Error{
		Code:   "insufficient_rights",
		Status: http.StatusForbidden,
		Message: Message{
			EN: "You can't view this course.",
			UK: "Ви не можете переглядати цей курс.",
		},
	}

	ErrInsufficientFilterRights = &Error{
		Code:   "insufficient_filter_rights",
		Status: http.StatusForbidden,
		Message: Message{
			EN: "You can't use this filter.",
			UK: "Ви не можете використовувати цей фільтр.",
		},
	}

	ErrCannotSuspendAdmin = &Error{
		Code:   "cannot_suspend_admin",
		Status: http.StatusForbidden,
		Message: Message{
			EN: "You can't suspend another admin.",
			UK: "Ви не можете призупинити іншого адміністратора.",
		},
	}

	ErrCourseNotFound = &Error{
		Code:   "course_not_found",
		Status: http.StatusNotFound,
		Message: Message{
			EN: "No course with this id.",
			UK: "Курсу з таким ідентифікатором немає.",
		},
	}
)
