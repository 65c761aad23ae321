package models

// AdminUser : la simple présence d'un document dans admin_users donne le
// privilège admin, pas de granularité de rôles au-delà.
type AdminUser struct {
	UID   string `bson:"uid" json:"uid"`
	Email string `bson:"email" json:"email"`
}
