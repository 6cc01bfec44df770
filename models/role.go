// file: models/role.go
package models

type Role string

const (
	RoleTeam  Role = "team"
	RoleAdmin Role = "admin"
)
