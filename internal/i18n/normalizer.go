// Package i18n translates backend authentication failures into stable
// pt-BR user messages.
package i18n

import (
	"strings"

	"github.com/you/padelsvc/domain"
)

// Fixed user-facing messages.
const (
	MsgInvalidCredentials = "E-mail ou senha incorretos."
	MsgInvalidEmail       = "E-mail inválido."
	MsgAlreadyRegistered  = "Este e-mail já está cadastrado."
	MsgWeakPassword       = "A senha deve ter pelo menos 6 caracteres."
	MsgEmailNotConfirmed  = "Confirme seu e-mail antes de entrar."
	MsgGenericFailure     = "Não foi possível concluir a solicitação. Tente novamente."
)

// Local validation messages surfaced before any backend call.
const (
	MsgPasswordBounds    = "A senha deve ter entre 6 e 72 caracteres."
	MsgPasswordMismatch  = "As senhas não coincidem."
	MsgProfileTypeNeeded = "Escolha um tipo de perfil para continuar."
	MsgClubNameRequired  = "Informe o nome do clube."
	MsgInvalidCNPJ       = "CNPJ inválido."
	MsgPhoneRequired     = "Informe um telefone válido."
	MsgAthleteNameNeeded = "Informe nome e sobrenome."
)

var codeMessages = map[string]string{
	domain.BackendCodeEmailInvalid:       MsgInvalidEmail,
	domain.BackendCodeInvalidCredentials: MsgInvalidCredentials,
	domain.BackendCodeUserAlreadyExists:  MsgAlreadyRegistered,
	domain.BackendCodeWeakPassword:       MsgWeakPassword,
}

// Substring matches are checked only when no known code applied. The known
// needles do not overlap, so the order within this tier carries no meaning.
var messageNeedles = []struct {
	needle  string
	message string
}{
	{"invalid login credentials", MsgInvalidCredentials},
	{"invalid email address", MsgInvalidEmail},
	{"already registered", MsgAlreadyRegistered},
	{"password too short", MsgWeakPassword},
	{"email not confirmed", MsgEmailNotConfirmed},
	{"invalid credentials", MsgInvalidCredentials},
}

// Normalize produces exactly one user-facing string for any backend error.
// Precedence: known code, then known message substring, then the verbatim
// message, then a generic fallback. Total: every input, including nil,
// yields a non-empty string.
func Normalize(err error) string {
	if err == nil {
		return MsgGenericFailure
	}
	message := err.Error()
	if be, ok := domain.AsBackendError(err); ok {
		if msg, ok := codeMessages[be.Code]; ok {
			return msg
		}
		message = be.Message
	}
	lowered := strings.ToLower(message)
	for _, m := range messageNeedles {
		if strings.Contains(lowered, m.needle) {
			return m.message
		}
	}
	if message != "" {
		return message
	}
	return MsgGenericFailure
}
