package controller

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"tender-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
)

const (
	defaultLimit  = 5
	defaultOffset = 0
	defaultActor  = "anonymous"
)

type errorResponse struct {
	Reason string `json:"reason"`
}

type submitErrorResponse struct {
	Error string `json:"error"`
}

func validationReason(err error) (string, bool) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return ve.Error(), true
	}

	return "", false
}

func getAllErrorMessages(err error) string {
	var builder strings.Builder
	for _, fe := range err.(validator.ValidationErrors) {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	if fe.Kind() == reflect.String {
		return getMessageForString(fe)
	}

	if fe.Kind() == reflect.Int || fe.Kind() == reflect.Int32 || fe.Kind() == reflect.Int64 {
		return getMessageForInt(fe)
	}

	return "incorrect value passed"
}

func getMessageForInt(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	}

	return "incorrect value passed"
}
