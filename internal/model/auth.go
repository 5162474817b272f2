package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims for authenticated accounts
type UserClaims struct {
	UserID      string `json:"userId"`
	CompanyType string `json:"companyType"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for account registration
type RegisterRequest struct {
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	CompanyName string      `json:"company_name"`
	CompanyType CompanyType `json:"company_type"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful register/login
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}
