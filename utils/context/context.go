package context

import (
	"context"

	"github.com/OuicestnousCA/oca/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func IsAdmin(ctx context.Context) bool {
	v, ok := ctx.Value(constant.IsAdminKey).(bool)
	return ok && v
}
