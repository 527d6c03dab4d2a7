package validators

import "github.com/MKhiriev/billiard-pos/models"

// Login parameter names.
const (
	FieldLogin    = "login"
	FieldPassword = "password"
)

// AuthLogin validates the login request.
var AuthLogin = &Schema{
	Name: "auth.login",
	Fields: []Field{
		{Name: FieldLogin, In: InBody, Type: TypeString, Required: true, MaxLen: 64},
		{Name: FieldPassword, In: InBody, Type: TypeString, Required: true, MaxLen: 128, KeepSpace: true},
	},
}

// CredentialsFromValues extracts login credentials.
func CredentialsFromValues(v Values) models.Credentials {
	var c models.Credentials
	c.Login, _ = v.String(FieldLogin)
	c.Password, _ = v.String(FieldPassword)
	return c
}
