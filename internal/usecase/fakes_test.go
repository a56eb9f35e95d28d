package usecase

import "io"

type fakePrompter struct {
	inputs  []string
	prompts []string
	said    []string
}

func (f *fakePrompter) Ask(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if len(f.inputs) == 0 {
		return "", io.EOF
	}
	in := f.inputs[0]
	f.inputs = f.inputs[1:]
	return in, nil
}

func (f *fakePrompter) Say(line string) error {
	f.said = append(f.said, line)
	return nil
}
