package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/OuicestnousCA/oca/application/user"
	"github.com/OuicestnousCA/oca/constant"
	"github.com/OuicestnousCA/oca/utils/errors"
	"github.com/gorilla/mux"
)

// AdminMiddleware validates the JWT session AND the admin role before
// any admin handler runs. There is no optimistic grant: a request
// without a server-confirmed role never reaches a handler.
func AdminMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			isAdmin, err := userApp.IsAdmin(r.Context(), userID)
			if err != nil {
				writeError(w, err)
				return
			}
			if !isAdmin {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			ctx = context.WithValue(ctx, constant.IsAdminKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
