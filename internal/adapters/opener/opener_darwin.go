//go:build darwin

package opener

func platformHandler(target string) (string, []string) {
	return "open", []string{target}
}
