package auth

import (
	"fmt"
	"regexp"
	"strings"
)

// prohibitedWords blocks reserved, offensive or adult terms from display
// names at registration time.
var prohibitedWords = []string{
	"admin", "administrador", "root", "teste", "test", "user", "usuario",
	"fuck", "shit", "bitch", "idiot", "stupid",
	"puta", "puto", "merda", "caralho", "porra", "foda",
	"idiota", "burro", "estupido", "imbecil",
	"sexo", "porn", "xxx", "erotico",
}

// nameRe accepts letters (including Latin-1 accented ones) and spaces only.
var nameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

// ValidateName checks a display name against the registration rules.
func ValidateName(name string) error {
	lower := strings.ToLower(strings.TrimSpace(name))

	for _, word := range prohibitedWords {
		if strings.Contains(lower, word) {
			return fmt.Errorf("nome contém palavra inadequada: %q", word)
		}
	}
	if len(strings.TrimSpace(name)) < 2 {
		return fmt.Errorf("nome deve ter pelo menos 2 caracteres")
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("nome deve conter apenas letras e espaços")
	}
	return nil
}

// ValidatePassword enforces the minimum length and mixed-case rules.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("a senha deve ter ao menos 8 caracteres")
	}
	if strings.ToLower(password) == password || strings.ToUpper(password) == password {
		return fmt.Errorf("a senha deve conter letras maiúsculas e minúsculas")
	}
	return nil
}
