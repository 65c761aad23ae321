package cache

import (
	"context"
	"time"

	"artiflora_back_end/internal/database"
)

const (
	AdminCacheTTL = 5 * time.Minute // Cache les lookups admin pendant 5 min
)

// GetAdminFromCache vérifie si le statut admin d'un uid est en cache.
// Cela évite de retaper dans la collection admin_users à chaque requête admin.
func GetAdminFromCache(ctx context.Context, uid string) (isAdmin bool, found bool) {
	if database.Redis == nil {
		return false, false
	}

	result, err := database.Redis.Get(ctx, "admin:"+uid).Result()
	if err != nil {
		return false, false
	}
	return result == "1", true
}

// SetAdminInCache mémorise le résultat d'un lookup admin.
func SetAdminInCache(ctx context.Context, uid string, isAdmin bool) {
	if database.Redis == nil {
		return
	}

	value := "0"
	if isAdmin {
		value = "1"
	}
	database.Redis.Set(ctx, "admin:"+uid, value, AdminCacheTTL)
}

// InvalidateAdminCache invalide l'entrée d'un uid (après modification
// manuelle de la collection admin_users).
func InvalidateAdminCache(ctx context.Context, uid string) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, "admin:"+uid)
}
