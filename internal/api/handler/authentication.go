package handler

import (
	"net/http"

	"github.com/Hemanth1845/sales-forecasting/internal/usecases/authenticating"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/Hemanth1845/sales-forecasting/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			handleServiceError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna os dados do usuário presentes no token
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":      userClaims.UserID,
			"name":    userClaims.UserName,
			"email":   userClaims.UserEmail,
			"role_id": userClaims.UserRoleID,
		})
	}
}
