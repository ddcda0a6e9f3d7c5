package backoffice

import (
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// UserSchema campos de usuario. El username es inmutable.
var UserSchema = Schema{
	Entity: "user",
	Fields: []Field{
		{Name: "username", Label: "Username", Kind: KindText, Mode: CreateOnly, MaxLength: entity.UserUsernameMaxLength},
		{Name: "email", Label: "Email", Kind: KindText, MaxLength: entity.UserEmailMaxLength},
		{Name: "first_name", Label: "First Name", Kind: KindText, MaxLength: entity.UserFirstNameMaxLength},
		{Name: "last_name", Label: "Last Name", Kind: KindText, MaxLength: entity.UserLastNameMaxLength},
		{Name: "enabled", Label: "Enabled", Kind: KindBool, Mode: UpdateOnly},
	},
}

// Users vista de usuarios.
var Users = Entity[dto.UserResponse, dto.UserRequest]{
	Schema: UserSchema,
	ID:     func(u dto.UserResponse) int64 { return u.ID },
	Snapshot: func(u dto.UserResponse) Values {
		return Values{
			"email":      u.Email,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"enabled":    boolText(u.Enabled),
		}
	},
	Bind: func(v Values) (dto.UserRequest, error) {
		enabled, err := OptionalBool(v, "enabled")
		if err != nil {
			return dto.UserRequest{}, err
		}
		return dto.UserRequest{
			Username:  v["username"],
			Email:     v["email"],
			FirstName: v["first_name"],
			LastName:  v["last_name"],
			Enabled:   enabled,
		}, nil
	},
	Columns: func(_ Lookups, loc *time.Location) []Column[dto.UserResponse] {
		return []Column[dto.UserResponse]{
			{Header: "Username", Format: func(u dto.UserResponse) string { return u.Username }},
			{Header: "Email", Format: func(u dto.UserResponse) string { return u.Email }},
			{Header: "First Name", Format: func(u dto.UserResponse) string { return u.FirstName }},
			{Header: "Last Name", Format: func(u dto.UserResponse) string { return u.LastName }},
			{Header: "Enabled", Format: func(u dto.UserResponse) string { return FormatBool(u.Enabled) }},
			{Header: "Created Date", Format: func(u dto.UserResponse) string { return FormatDateTime(u.CreatedDate, loc) }},
			{Header: "Last Login", Format: func(u dto.UserResponse) string { return FormatOptionalDateTime(u.LastLoginDate, loc) }},
		}
	},
	Effects: DefaultEffects(),
}
