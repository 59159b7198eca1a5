// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"user-management/internal/entities"
	"user-management/internal/transport/http/dto"
)

// FromCreateRequest builds an entities.NewUser from transport DTO.
func FromCreateRequest(src dto.CreateUserRequest) entities.NewUser {
	return entities.NewUser{
		Name:  src.Name,
		Email: src.Email,
	}
}

// FromUpdateRequest builds a partial update; fields absent in the body stay nil.
func FromUpdateRequest(src dto.UpdateUserRequest) entities.UserPatch {
	return entities.UserPatch{
		Name:  src.Name,
		Email: src.Email,
	}
}

// ToUser maps entities.User to transport model.
func ToUser(u entities.User) dto.User {
	return dto.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// ToUserList maps a slice of entities.User to transport slice.
func ToUserList(list []entities.User) []dto.User {
	res := make([]dto.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToUser(u))
	}
	return res
}
