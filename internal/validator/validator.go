// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("grant_type", validateGrantType)
		_ = v.RegisterValidation("grant_status", validateGrantStatus)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
	}
}

func validateGrantType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "iso", "nso", "rsu", "espp":
		return true
	}
	return false
}

func validateGrantStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "exercised", "expired", "cancelled":
		return true
	}
	return false
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "exercise", "sale", "grant", "vest":
		return true
	}
	return false
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "completed", "failed", "cancelled":
		return true
	}
	return false
}
