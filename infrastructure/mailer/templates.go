package mailer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/vfg2006/mko-api/internal/domain"
)

const passwordResetSubject = "MKO.pl – ustaw nowe hasło"

// PasswordResetMessage monta o e-mail com o link de redefinição de senha
func PasswordResetMessage(to, link string, ttl time.Duration) Message {
	minutes := int(ttl / time.Minute)
	expiry := fmt.Sprintf("Link wygaśnie za %d min. Jeśli to nie Ty prosiłeś o reset hasła, zignoruj tę wiadomość.", minutes)
	escLink := html.EscapeString(link)

	return Message{
		To:      to,
		Subject: passwordResetSubject,
		Text:    fmt.Sprintf("Aby ustawić nowe hasło kliknij w link:\n\n%s\n\n%s", link, expiry),
		HTML: `<p>Aby ustawić nowe hasło kliknij w link:</p>
<p><a href="` + escLink + `">` + escLink + `</a></p>
<p style="color:#666;font-size:12px;">` + html.EscapeString(expiry) + `</p>`,
	}
}

// ContactMessage encaminha a mensagem do formulário de contato
func ContactMessage(to string, contact *domain.Contact) Message {
	sender := contact.Email
	if contact.Name != "" {
		sender = fmt.Sprintf("%s <%s>", contact.Name, contact.Email)
	}

	return Message{
		To:      to,
		Subject: "MKO.pl – wiadomość z formularza kontaktowego",
		Text:    fmt.Sprintf("Od: %s\n\n%s", sender, contact.Message),
		HTML: `<p><strong>Od:</strong> ` + html.EscapeString(sender) + `</p>
<p style="white-space:pre-wrap;">` + html.EscapeString(contact.Message) + `</p>`,
	}
}

// MaskEmail esconde a parte local do e-mail para uso em logs
func MaskEmail(email string) string {
	local, domainPart, ok := strings.Cut(email, "@")
	if !ok || local == "" || domainPart == "" {
		return "***"
	}

	if len(local) <= 2 {
		return local[:1] + "*@" + domainPart
	}
	return local[:2] + "***@" + domainPart
}
