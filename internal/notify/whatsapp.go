// Package notify builds the outbound WhatsApp deep links used to charge and
// remind students. It is pure string formatting; nothing here performs I/O.
package notify

import (
	"fmt"
	"net/url"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// ChargeMessage is the short dashboard "cobrar" text. The overdue variant
// asks for the payment receipt, the friendly one just reminds the due day.
func ChargeMessage(s *models.Student, overdue bool) string {
	if overdue {
		return fmt.Sprintf(
			"Olá %s! Tudo bem? Verificamos aqui que a sua mensalidade do CT Leandro Nascimento venceu dia %d. Consegue nos enviar o comprovante de pagamento? Oss! 🥋",
			s.FirstName(), s.DueDate.Day())
	}
	return fmt.Sprintf(
		"Olá %s! Passando para lembrar que sua mensalidade vence dia %d. Tamo junto! Oss! 🥋",
		s.FirstName(), s.DueDate.Day())
}

// ReminderMessage is the longer batch-reminder text sent to every overdue
// student from the dashboard notice.
func ReminderMessage(s *models.Student) string {
	return fmt.Sprintf(
		"Olá, %s! Tudo bem?\n\n"+
			"Este é um lembrete do Centro de Treinamento Leandro Nascimento sobre a sua mensalidade de R$%.2f, que venceu em %s.\n\n"+
			"Para facilitar, você pode realizar o pagamento diretamente no seu Portal do Aluno.\n\n"+
			"Regularize sua situação para não perder nenhum treino! 😉\n\n"+
			"Qualquer dúvida, estamos à disposição.",
		s.Name, s.Fee, s.DueDate.Format("02/01/2006"))
}

// Link assembles the wa.me deep link for a student and message.
func Link(s *models.Student, message string) string {
	v := url.Values{}
	v.Set("text", message)
	return "https://wa.me/" + models.OnlyDigits(s.Phone) + "?" + v.Encode()
}
