package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"artiflora_back_end/internal/cache"
)

// IsAdmin : la présence d'un document admin_users avec cet uid est le seul
// signal d'autorisation admin. Le résultat passe par le cache Redis quand il
// est disponible.
func (s *Store) IsAdmin(ctx context.Context, uid string) (bool, error) {
	if isAdmin, found := cache.GetAdminFromCache(ctx, uid); found {
		return isAdmin, nil
	}

	count, err := s.db.Collection("admin_users").CountDocuments(ctx, bson.M{"uid": uid})
	if err != nil {
		return false, err
	}

	isAdmin := count > 0
	cache.SetAdminInCache(ctx, uid, isAdmin)
	return isAdmin, nil
}
