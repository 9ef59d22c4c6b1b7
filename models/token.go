package models

import "github.com/golang-jwt/jwt/v5"

// DeviceToken is a signed bearer token that binds requests to one device.
type DeviceToken struct {
	// Token is the parsed JWT. It is nil for tokens that were only signed.
	Token *jwt.Token

	// SignedString is the compact serialised token sent in the
	// Authorization header.
	SignedString string

	// DeviceID is the token subject.
	DeviceID string
}
