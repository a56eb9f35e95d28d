package tui

type toastExpiredMsg struct {
	seq int
}
