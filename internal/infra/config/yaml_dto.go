package config

type YAMLFile struct {
	Phonebook YAMLConfig `yaml:"phonebook"`
}

type YAMLConfig struct {
	ConfirmWord *string      `yaml:"confirm_word"`
	Messages    YAMLMessages `yaml:"messages"`
}

type YAMLMessages struct {
	NamePrompt   string `yaml:"name_prompt"`
	PhonePrompt  string `yaml:"phone_prompt"`
	MorePrompt   string `yaml:"more_prompt"`
	Retry        string `yaml:"retry"`
	InvalidName  string `yaml:"invalid_name"`
	InvalidPhone string `yaml:"invalid_phone"`
	NotFound     string `yaml:"not_found"`
	NoPhone      string `yaml:"no_phone"`
	Header       string `yaml:"header"`
}
