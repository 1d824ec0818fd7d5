package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// RegisterValidators plugs the custom rules into Gin's binding engine.
// Must run once before the router starts serving.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// A CPF is accepted formatted ("111.222.333-44") or raw; what matters is
	// carrying exactly 11 digits.
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return len(models.OnlyDigits(fl.Field().String())) == 11
	})
}

// bindingErrors maps a validation failure to the per-field messages returned
// to the form, so no partial submission ever happens silently.
func bindingErrors(err error) map[string]string {
	fields := map[string]string{}
	verr, ok := err.(validator.ValidationErrors)
	if !ok {
		return fields
	}
	for _, fe := range verr {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "Campo obrigatório"
		case "cpf":
			fields[fe.Field()] = "CPF deve conter 11 dígitos"
		case "datetime":
			fields[fe.Field()] = "Data inválida (use AAAA-MM-DD)"
		case "gt", "gte":
			fields[fe.Field()] = "Valor deve ser positivo"
		case "oneof":
			fields[fe.Field()] = "Valor fora das opções permitidas"
		default:
			fields[fe.Field()] = "Valor inválido"
		}
	}
	return fields
}
