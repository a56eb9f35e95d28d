package domain

// Config represents the Phonebook harness configuration loaded from phonebook.yaml.
type Config struct {
	ConfirmWord string
	Messages    MessagesConfig
}

// MessagesConfig holds every user-facing string the harnesses print.
// Retry is a format string with one %s verb for the error text.
type MessagesConfig struct {
	NamePrompt   string
	PhonePrompt  string
	MorePrompt   string
	Retry        string
	InvalidName  string
	InvalidPhone string
	NotFound     string
	NoPhone      string
	Header       string
}

// DefaultConfig provides sane defaults if phonebook.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		ConfirmWord: "так",
		Messages: MessagesConfig{
			NamePrompt:   "Введіть ім'я контакту: ",
			PhonePrompt:  "Введіть номер телефону (10 цифр): ",
			MorePrompt:   "Додати ще один телефон? (так/ні): ",
			Retry:        "Помилка: %s. Спробуйте ще раз.",
			InvalidName:  "Ім'я повинно бути непорожнім рядком",
			InvalidPhone: "Телефон повинен містити рівно 10 цифр",
			NotFound:     "Контакт не знайдено",
			NoPhone:      "Телефон не знайдено",
			Header:       "Поточна адресна книга:",
		},
	}
}

// WorkspaceSpec describes where `phonebook init` scaffolds its files.
type WorkspaceSpec struct {
	Root string
}
